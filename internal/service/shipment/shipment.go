package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

type Shipment struct {
	repository Repository
	partyStore PartyStore
	routing    RoutingClient
	pricing    PricingEngine
	notifier   Notifier
	txManager  TxManager
	logger     serviceLogger
}

func New(
	repository Repository,
	partyStore PartyStore,
	routing RoutingClient,
	pricing PricingEngine,
	notifier Notifier,
	txManager TxManager,
	logger serviceLogger,
) *Shipment {
	return &Shipment{
		repository: repository,
		partyStore: partyStore,
		routing:    routing,
		pricing:    pricing,
		notifier:   notifier,
		txManager:  txManager,
		logger:     logger,
	}
}

// CreateShipment создает перевозку в статусе REQUESTED. Недоступность
// маршрутизатора не блокирует создание, тогда оценка расстояния остается пустой.
func (s *Shipment) CreateShipment(ctx context.Context, shipperID int64, draft entities.ShipmentDraft) (int64, error) {
	if !isValidID(shipperID) {
		return 0, fmt.Errorf("shipper id: %w", ErrInvalidArgument)
	}
	if !isValidDraft(draft) {
		return 0, ErrInvalidArgument
	}

	_, err := s.partyStore.GetShipperByID(ctx, shipperID)
	if err != nil {
		if errors.Is(err, ErrPartyNotFound) {
			return 0, fmt.Errorf("shipper %d: %w", shipperID, ErrPartyNotFound)
		}
		return 0, fmt.Errorf("get shipper: %w", err)
	}

	pricing, err := s.pricing.Derive(draft.RequestedPrice)
	if err != nil {
		return 0, fmt.Errorf("derive pricing: %w", ErrInvalidArgument)
	}

	estimatedDistanceKm := s.estimateDistance(ctx, draft)

	status := entities.ShipmentRequested
	settlementStatus := entities.SettlementIneligible
	createdAt := time.Now().UTC()

	shipmentModify := entities.ShipmentModify{
		ShipperID:        &shipperID,
		Status:           &status,
		SettlementStatus: &settlementStatus,

		PickupPoint:      &draft.PickupPoint,
		PickupAddress:    &draft.PickupAddress,
		PickupDesiredAt:  &draft.PickupDesiredAt,
		DropoffPoint:     &draft.DropoffPoint,
		DropoffAddress:   &draft.DropoffAddress,
		DropoffDesiredAt: &draft.DropoffDesiredAt,

		Waypoint1Point:   draft.Waypoint1Point,
		Waypoint1Address: draft.Waypoint1Address,
		Waypoint2Point:   draft.Waypoint2Point,
		Waypoint2Address: draft.Waypoint2Address,

		EstimatedDistanceKm: estimatedDistanceKm,

		Price:       &pricing.Price,
		PlatformFee: &pricing.PlatformFee,
		Profit:      &pricing.Profit,

		CargoType:       &draft.CargoType,
		CargoWeightKg:   &draft.CargoWeightKg,
		CargoVolume:     draft.CargoVolume,
		NeedRefrigerate: &draft.NeedRefrigerate,
		NeedFreeze:      &draft.NeedFreeze,
		Description:     draft.Description,
		CargoPhotoURL:   draft.CargoPhotoURL,

		CreatedAt: &createdAt,
	}

	created, err := s.repository.Create(ctx, shipmentModify)
	if err != nil {
		return 0, fmt.Errorf("create shipment: %w", err)
	}

	return created.ID, nil
}

// Accept назначает перевозку водителю. Разрешено только из статуса REQUESTED.
func (s *Shipment) Accept(ctx context.Context, driverID, shipmentID int64) error {
	if !isValidID(driverID) || !isValidID(shipmentID) {
		return ErrInvalidArgument
	}

	if err := s.validateDriverAccess(ctx, driverID); err != nil {
		return err
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment for update: %w", err)
		}

		if shipment.Status != entities.ShipmentRequested {
			return fmt.Errorf("accept from status %s: %w", shipment.Status, ErrStateConflict)
		}
		if shipment.DriverID != nil {
			return fmt.Errorf("shipment already assigned: %w", ErrStateConflict)
		}

		now := time.Now().UTC()
		assignedStatus := entities.ShipmentAssigned
		_, err = s.repository.Update(ctx, entities.ShipmentModify{
			ID:         &shipment.ID,
			DriverID:   &driverID,
			Status:     &assignedStatus,
			AcceptedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyAfterCommit(ctx, shipmentID, s.notifier.NotifyAssignmentConfirmed, "assignment confirmed")
	return nil
}

// Start переводит перевозку в IN_TRANSIT. Повторный вызов назначенным
// водителем идемпотентен.
func (s *Shipment) Start(ctx context.Context, driverID, shipmentID int64) error {
	if !isValidID(driverID) || !isValidID(shipmentID) {
		return ErrInvalidArgument
	}

	if err := s.validateDriverAccess(ctx, driverID); err != nil {
		return err
	}

	started := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment for update: %w", err)
		}

		if shipment.Status == entities.ShipmentInTransit {
			if !isAssignedDriver(shipment, driverID) {
				return fmt.Errorf("start shipment %d: %w", shipmentID, ErrRoleDenied)
			}
			return nil
		}

		if shipment.Status != entities.ShipmentAssigned {
			return fmt.Errorf("start from status %s: %w", shipment.Status, ErrStateConflict)
		}
		if !isAssignedDriver(shipment, driverID) {
			return fmt.Errorf("start shipment %d: %w", shipmentID, ErrRoleDenied)
		}

		now := time.Now().UTC()
		inTransitStatus := entities.ShipmentInTransit
		_, err = s.repository.Update(ctx, entities.ShipmentModify{
			ID:       &shipment.ID,
			Status:   &inTransitStatus,
			PickupAt: &now,
		})
		if err != nil {
			return fmt.Errorf("start transport: %w", err)
		}
		started = true
		return nil
	})
	if err != nil {
		return err
	}

	if started {
		s.notifyAfterCommit(ctx, shipmentID, s.notifier.NotifyTransportStarted, "transport started")
	}
	return nil
}

// Complete завершает перевозку и открывает ее для расчетов. Повторный вызов
// назначенным водителем только дописывает фото выгрузки.
func (s *Shipment) Complete(ctx context.Context, driverID, shipmentID int64, dropoffPhotoURL *string) error {
	if !isValidID(driverID) || !isValidID(shipmentID) {
		return ErrInvalidArgument
	}

	if err := s.validateDriverAccess(ctx, driverID); err != nil {
		return err
	}

	completed := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment for update: %w", err)
		}

		if shipment.Status == entities.ShipmentDone {
			if !isAssignedDriver(shipment, driverID) {
				return fmt.Errorf("complete shipment %d: %w", shipmentID, ErrRoleDenied)
			}
			if photo := normalizePhotoURL(dropoffPhotoURL); photo != nil {
				_, err = s.repository.Update(ctx, entities.ShipmentModify{
					ID:              &shipment.ID,
					DropoffPhotoURL: photo,
				})
				if err != nil {
					return fmt.Errorf("update dropoff photo: %w", err)
				}
			}
			return nil
		}

		if shipment.Status != entities.ShipmentInTransit {
			return fmt.Errorf("complete from status %s: %w", shipment.Status, ErrStateConflict)
		}
		if !isAssignedDriver(shipment, driverID) {
			return fmt.Errorf("complete shipment %d: %w", shipmentID, ErrRoleDenied)
		}

		now := time.Now().UTC()
		doneStatus := entities.ShipmentDone
		readyStatus := entities.SettlementReady
		shipmentModify := entities.ShipmentModify{
			ID:               &shipment.ID,
			Status:           &doneStatus,
			SettlementStatus: &readyStatus,
			DropoffAt:        &now,
		}
		if photo := normalizePhotoURL(dropoffPhotoURL); photo != nil {
			shipmentModify.DropoffPhotoURL = photo
		}

		_, err = s.repository.Update(ctx, shipmentModify)
		if err != nil {
			return fmt.Errorf("complete transport: %w", err)
		}
		completed = true
		return nil
	})
	if err != nil {
		return err
	}

	if completed {
		s.notifyAfterCommit(ctx, shipmentID, s.notifier.NotifyTransportCompleted, "transport completed")
	}
	return nil
}

func (s *Shipment) GetShipment(ctx context.Context, id int64) (*entities.Shipment, error) {
	if !isValidID(id) {
		return nil, ErrInvalidArgument
	}

	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

// ListUnassigned возвращает доступные для приема перевозки в статусе REQUESTED.
func (s *Shipment) ListUnassigned(ctx context.Context) ([]entities.Shipment, error) {
	shipments, err := s.repository.ListUnassigned(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unassigned shipments: %w", err)
	}
	return shipments, nil
}

func (s *Shipment) ListByShipper(ctx context.Context, shipperID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error) {
	if !isValidID(shipperID) {
		return nil, ErrInvalidArgument
	}

	shipments, err := s.repository.ListByShipper(ctx, shipperID, status)
	if err != nil {
		return nil, fmt.Errorf("list shipper shipments: %w", err)
	}
	return shipments, nil
}

func (s *Shipment) ListByDriver(ctx context.Context, driverID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidArgument
	}

	shipments, err := s.repository.ListByDriver(ctx, driverID, status)
	if err != nil {
		return nil, fmt.Errorf("list driver shipments: %w", err)
	}
	return shipments, nil
}

func (s *Shipment) validateDriverAccess(ctx context.Context, driverID int64) error {
	exists, err := s.partyStore.DriverExists(ctx, driverID)
	if err != nil {
		return fmt.Errorf("check driver: %w", err)
	}
	if !exists {
		return fmt.Errorf("driver %d: %w", driverID, ErrRoleDenied)
	}
	return nil
}

// estimateDistance запрашивает маршрут у внешнего провайдера. Любая ошибка
// провайдера деградирует до отсутствия оценки.
func (s *Shipment) estimateDistance(ctx context.Context, draft entities.ShipmentDraft) *float64 {
	waypoints := make([]entities.GeoPoint, 0, 2)
	if draft.Waypoint1Point != nil {
		waypoints = append(waypoints, *draft.Waypoint1Point)
	}
	if draft.Waypoint2Point != nil {
		waypoints = append(waypoints, *draft.Waypoint2Point)
	}

	summary, err := s.routing.Route(ctx, draft.PickupPoint, draft.DropoffPoint, waypoints)
	if err != nil {
		s.logger.Warn("routing provider unavailable, shipment created without distance estimate",
			logger.NewField("error", err.Error()),
		)
		return nil
	}

	distanceKm := summary.DistanceKm()
	return &distanceKm
}

// notifyAfterCommit отправляет уведомление уже после коммита транзакции.
// Сбой уведомления не откатывает успешный переход статуса.
func (s *Shipment) notifyAfterCommit(ctx context.Context, shipmentID int64, notify func(context.Context, int64) error, event string) {
	if err := notify(ctx, shipmentID); err != nil {
		s.logger.Warn("shipment state changed but notification skipped",
			logger.NewField("event", event),
			logger.NewField("shipment_id", shipmentID),
			logger.NewField("error", err.Error()),
		)
	}
}

func isAssignedDriver(shipment *entities.Shipment, driverID int64) bool {
	return shipment.DriverID != nil && *shipment.DriverID == driverID
}

func normalizePhotoURL(url *string) *string {
	if url == nil || strings.TrimSpace(*url) == "" {
		return nil
	}
	return url
}
