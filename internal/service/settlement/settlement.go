package settlement

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
)

// Settlement агрегирует помесячные суммы по перевозкам. Для отправителя
// считается полная стоимость, для водителя его доход после комиссии.
type Settlement struct {
	repository Repository
	partyStore PartyStore
}

func New(repository Repository, partyStore PartyStore) *Settlement {
	return &Settlement{
		repository: repository,
		partyStore: partyStore,
	}
}

// Summary возвращает суммы текущего и прошлого месяца и их разницу.
// Текущий месяц считается от первого числа до текущего момента, прошлый
// целиком до последнего мгновения перед началом текущего.
func (s *Settlement) Summary(ctx context.Context, partyID int64, role entities.PartyRole) (*entities.SettlementSummary, error) {
	if partyID <= 0 {
		return nil, ErrInvalidArgument
	}

	if err := s.validatePartyAccess(ctx, partyID, role); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	startOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	startOfLastMonth := startOfThisMonth.AddDate(0, -1, 0)
	endOfLastMonth := startOfThisMonth.Add(-time.Nanosecond)

	thisMonthTotal, err := s.sumForPeriod(ctx, partyID, role, startOfThisMonth, now)
	if err != nil {
		return nil, fmt.Errorf("sum this month: %w", err)
	}

	lastMonthTotal, err := s.sumForPeriod(ctx, partyID, role, startOfLastMonth, endOfLastMonth)
	if err != nil {
		return nil, fmt.Errorf("sum last month: %w", err)
	}

	return &entities.SettlementSummary{
		ThisMonthTotal: thisMonthTotal,
		LastMonthTotal: lastMonthTotal,
		Difference:     thisMonthTotal - lastMonthTotal,
	}, nil
}

// List возвращает перевозки стороны за календарный месяц с опциональными
// фильтрами по статусу перевозки и статусу расчета.
func (s *Settlement) List(
	ctx context.Context,
	partyID int64,
	role entities.PartyRole,
	year, month int,
	status *entities.ShipmentStatusType,
	settlementStatus *entities.SettlementStatusType,
) ([]entities.SettlementEntry, error) {
	if partyID <= 0 {
		return nil, ErrInvalidArgument
	}
	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidPeriod
	}

	if err := s.validatePartyAccess(ctx, partyID, role); err != nil {
		return nil, err
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0).Add(-time.Nanosecond)

	shipments, err := s.repository.ListForSettlement(ctx, entities.SettlementFilter{
		PartyID:          partyID,
		Role:             role,
		From:             from,
		To:               to,
		Status:           status,
		SettlementStatus: settlementStatus,
	})
	if err != nil {
		return nil, fmt.Errorf("list shipments for settlement: %w", err)
	}

	entries := make([]entities.SettlementEntry, 0, len(shipments))
	for i := range shipments {
		entries = append(entries, toSettlementEntry(&shipments[i], role))
	}
	return entries, nil
}

// Detail возвращает расчетные детали завершенной перевозки с фотографиями.
// Доступ только у отправителя перевозки и назначенного водителя.
func (s *Settlement) Detail(ctx context.Context, callerID, shipmentID int64) (*entities.ShipmentDetail, error) {
	if callerID <= 0 || shipmentID <= 0 {
		return nil, ErrInvalidArgument
	}

	shipment, err := s.repository.GetByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	if shipment.Status != entities.ShipmentDone {
		return nil, fmt.Errorf("settlement detail for status %s: %w", shipment.Status, ErrNotCompleted)
	}

	isShipper := shipment.ShipperID == callerID
	isDriver := shipment.DriverID != nil && *shipment.DriverID == callerID
	if !isShipper && !isDriver {
		return nil, fmt.Errorf("settlement detail access for party %d: %w", callerID, ErrRoleDenied)
	}

	shipper, err := s.partyStore.GetShipperByID(ctx, shipment.ShipperID)
	if err != nil {
		return nil, fmt.Errorf("get shipper: %w", err)
	}

	detail := &entities.ShipmentDetail{
		Shipment:            *shipment,
		ShipmentNumber:      shipment.Number(),
		ShipperName:         shipper.Name,
		IncludeCargoPhoto:   true,
		IncludeDropoffPhoto: true,
	}

	if shipment.DriverID != nil {
		driver, err := s.partyStore.GetDriverByID(ctx, *shipment.DriverID)
		if err != nil {
			return nil, fmt.Errorf("get driver: %w", err)
		}
		detail.DriverName = &driver.Name
	}

	return detail, nil
}

func (s *Settlement) validatePartyAccess(ctx context.Context, partyID int64, role entities.PartyRole) error {
	var (
		exists bool
		err    error
	)

	switch role {
	case entities.RoleShipper:
		exists, err = s.partyStore.ShipperExists(ctx, partyID)
	case entities.RoleDriver:
		exists, err = s.partyStore.DriverExists(ctx, partyID)
	default:
		return fmt.Errorf("unknown role %q: %w", role, ErrInvalidArgument)
	}
	if err != nil {
		return fmt.Errorf("check %s: %w", role, err)
	}
	if !exists {
		return fmt.Errorf("%s %d: %w", role, partyID, ErrRoleDenied)
	}
	return nil
}

func (s *Settlement) sumForPeriod(ctx context.Context, partyID int64, role entities.PartyRole, from, to time.Time) (int64, error) {
	if role == entities.RoleShipper {
		return s.repository.SumPriceByShipperAndPeriod(ctx, partyID, from, to)
	}
	return s.repository.SumProfitByDriverAndPeriod(ctx, partyID, from, to)
}

func toSettlementEntry(shipment *entities.Shipment, role entities.PartyRole) entities.SettlementEntry {
	amount := shipment.Price
	if role == entities.RoleDriver {
		amount = shipment.Profit
	}

	return entities.SettlementEntry{
		ShipmentID:       shipment.ID,
		ShipmentNumber:   shipment.Number(),
		Status:           shipment.Status,
		SettlementStatus: shipment.SettlementStatus,
		PickupAddress:    shipment.PickupAddress,
		DropoffAddress:   shipment.DropoffAddress,
		Amount:           amount,
		CreatedAt:        shipment.CreatedAt,
		DropoffAt:        shipment.DropoffAt,
	}
}
