package eta

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

// Eta собирает детальное представление перевозки и оценивает время прибытия
// через внешний маршрутизатор. Деградация маршрутизатора не считается ошибкой,
// детали возвращаются без оценки.
type Eta struct {
	repository Repository
	partyStore PartyStore
	routing    RoutingClient
	logger     serviceLogger
}

func New(repository Repository, partyStore PartyStore, routing RoutingClient, logger serviceLogger) *Eta {
	return &Eta{
		repository: repository,
		partyStore: partyStore,
		routing:    routing,
		logger:     logger,
	}
}

// Detail возвращает детали перевозки с расчетом ETA.
// До выезда считается полный маршрут от точки погрузки, ETA отсчитывается от
// желаемого времени погрузки. После выезда, когда есть текущая позиция
// водителя, считается остаток пути и ETA отсчитывается от текущего момента.
func (s *Eta) Detail(ctx context.Context, shipmentID int64) (*entities.ShipmentDetail, error) {
	detail, shipment, err := s.baseDetail(ctx, shipmentID, false, false)
	if err != nil {
		return nil, err
	}

	if shipment.DriverID != nil && shipment.CurrentLocationPoint != nil {
		s.applyRemainingRoute(ctx, shipment, detail)
	} else {
		s.applyFullRoute(ctx, shipment, detail)
	}

	return detail, nil
}

// AcceptDetail возвращает детали для экрана приема заявки водителем.
// Маршрутизатор не вызывается, фото не раскрываются.
func (s *Eta) AcceptDetail(ctx context.Context, shipmentID int64) (*entities.ShipmentDetail, error) {
	detail, _, err := s.baseDetail(ctx, shipmentID, false, false)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *Eta) baseDetail(ctx context.Context, shipmentID int64, includeCargoPhoto, includeDropoffPhoto bool) (*entities.ShipmentDetail, *entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, nil, ErrInvalidArgument
	}

	shipment, err := s.repository.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, nil, fmt.Errorf("get shipment: %w", err)
	}

	shipper, err := s.partyStore.GetShipperByID(ctx, shipment.ShipperID)
	if err != nil {
		return nil, nil, fmt.Errorf("get shipper: %w", err)
	}

	detail := &entities.ShipmentDetail{
		Shipment:            *shipment,
		ShipmentNumber:      shipment.Number(),
		ShipperName:         shipper.Name,
		IncludeCargoPhoto:   includeCargoPhoto,
		IncludeDropoffPhoto: includeDropoffPhoto,
	}

	if shipment.DriverID != nil {
		driver, err := s.partyStore.GetDriverByID(ctx, *shipment.DriverID)
		if err != nil {
			return nil, nil, fmt.Errorf("get driver: %w", err)
		}
		detail.DriverName = &driver.Name
	}

	return detail, shipment, nil
}

func (s *Eta) applyFullRoute(ctx context.Context, shipment *entities.Shipment, detail *entities.ShipmentDetail) {
	summary, err := s.routing.Route(ctx, shipment.PickupPoint, shipment.DropoffPoint, shipmentWaypoints(shipment))
	if err != nil {
		s.logger.Warn("routing provider unavailable, detail returned without eta",
			logger.NewField("shipment_id", shipment.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}

	distanceKm := summary.DistanceKm()
	arrivalAt := shipment.PickupDesiredAt.Add(summary.Duration())
	detail.DistanceToDestinationKm = &distanceKm
	detail.EstimatedArrivalAt = &arrivalAt
}

func (s *Eta) applyRemainingRoute(ctx context.Context, shipment *entities.Shipment, detail *entities.ShipmentDetail) {
	summary, err := s.routing.Route(ctx, *shipment.CurrentLocationPoint, shipment.DropoffPoint, shipmentWaypoints(shipment))
	if err != nil {
		s.logger.Warn("routing provider unavailable, detail returned without eta",
			logger.NewField("shipment_id", shipment.ID),
			logger.NewField("error", err.Error()),
		)
		return
	}

	distanceKm := summary.DistanceKm()
	arrivalAt := time.Now().UTC().Add(summary.Duration())
	detail.DistanceToDestinationKm = &distanceKm
	detail.EstimatedArrivalAt = &arrivalAt
}

func shipmentWaypoints(shipment *entities.Shipment) []entities.GeoPoint {
	waypoints := make([]entities.GeoPoint, 0, 2)
	if shipment.Waypoint1Point != nil {
		waypoints = append(waypoints, *shipment.Waypoint1Point)
	}
	if shipment.Waypoint2Point != nil {
		waypoints = append(waypoints, *shipment.Waypoint2Point)
	}
	return waypoints
}
