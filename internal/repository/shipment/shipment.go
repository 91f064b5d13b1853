package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/pkg/geo"
	"service/internal/repository"
	"service/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Геометрия в выборках отдается как EWKT, в записях принимается через
// ST_GeomFromEWKT.
const selectColumns = `id, shipper_id, driver_id, status, settlement_status,
	ST_AsEWKT(pickup_point), pickup_address, pickup_desired_at, pickup_at,
	ST_AsEWKT(dropoff_point), dropoff_address, dropoff_desired_at, dropoff_at,
	ST_AsEWKT(waypoint1_point), waypoint1_address,
	ST_AsEWKT(waypoint2_point), waypoint2_address,
	estimated_distance_km, price, platform_fee, profit,
	cargo_type, cargo_weight_kg, cargo_volume, need_refrigerate, need_freeze,
	description, cargo_photo_url, dropoff_photo_url,
	shipper_cancel_toggle, driver_cancel_toggle,
	ST_AsEWKT(current_location_point), created_at, accepted_at`

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModify)

	query := `INSERT INTO shipments (
			shipper_id, status, settlement_status,
			pickup_point, pickup_address, pickup_desired_at,
			dropoff_point, dropoff_address, dropoff_desired_at,
			waypoint1_point, waypoint1_address, waypoint2_point, waypoint2_address,
			estimated_distance_km, price, platform_fee, profit,
			cargo_type, cargo_weight_kg, cargo_volume, need_refrigerate, need_freeze,
			description, cargo_photo_url, created_at
		)
		VALUES (
			$1, $2, $3,
			ST_GeomFromEWKT($4), $5, $6,
			ST_GeomFromEWKT($7), $8, $9,
			ST_GeomFromEWKT($10), $11, ST_GeomFromEWKT($12), $13,
			$14, $15, $16, $17,
			$18, $19, $20, $21, $22,
			$23, $24, $25
		)
		RETURNING ` + selectColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		shipmentModifyDB.ShipperID,
		shipmentModifyDB.Status,
		shipmentModifyDB.SettlementStatus,
		shipmentModifyDB.PickupPoint,
		shipmentModifyDB.PickupAddress,
		shipmentModifyDB.PickupDesiredAt,
		shipmentModifyDB.DropoffPoint,
		shipmentModifyDB.DropoffAddress,
		shipmentModifyDB.DropoffDesiredAt,
		shipmentModifyDB.Waypoint1Point,
		shipmentModifyDB.Waypoint1Address,
		shipmentModifyDB.Waypoint2Point,
		shipmentModifyDB.Waypoint2Address,
		shipmentModifyDB.EstimatedDistanceKm,
		shipmentModifyDB.Price,
		shipmentModifyDB.PlatformFee,
		shipmentModifyDB.Profit,
		shipmentModifyDB.CargoType,
		shipmentModifyDB.CargoWeightKg,
		shipmentModifyDB.CargoVolume,
		shipmentModifyDB.NeedRefrigerate,
		shipmentModifyDB.NeedFreeze,
		shipmentModifyDB.Description,
		shipmentModifyDB.CargoPhotoURL,
		shipmentModifyDB.CreatedAt,
	)

	shipmentDB, err := scanShipment(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(shipmentDB)
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + selectColumns + `
		FROM shipments
		WHERE id = $1`

	return r.getOne(ctx, query, id)
}

// GetByIDForUpdate блокирует строку до конца транзакции. Только внутри
// менеджера транзакций.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Shipment, error) {
	query := `SELECT ` + selectColumns + `
		FROM shipments
		WHERE id = $1
		FOR UPDATE`

	return r.getOne(ctx, query, id)
}

func (r *Repository) Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error) {
	shipmentModifyDB := FromDomainModify(&shipmentModify)

	builder := qb.
		Update("shipments")

	// опциональные поля
	if shipmentModifyDB.DriverID != nil {
		builder = builder.Set("driver_id", shipmentModifyDB.DriverID)
	}
	if shipmentModifyDB.Status != nil {
		builder = builder.Set("status", shipmentModifyDB.Status)
	}
	if shipmentModifyDB.SettlementStatus != nil {
		builder = builder.Set("settlement_status", shipmentModifyDB.SettlementStatus)
	}
	if shipmentModifyDB.PickupAt != nil {
		builder = builder.Set("pickup_at", shipmentModifyDB.PickupAt)
	}
	if shipmentModifyDB.DropoffAt != nil {
		builder = builder.Set("dropoff_at", shipmentModifyDB.DropoffAt)
	}
	if shipmentModifyDB.DropoffPhotoURL != nil {
		builder = builder.Set("dropoff_photo_url", shipmentModifyDB.DropoffPhotoURL)
	}
	if shipmentModifyDB.CargoPhotoURL != nil {
		builder = builder.Set("cargo_photo_url", shipmentModifyDB.CargoPhotoURL)
	}
	if shipmentModifyDB.EstimatedDistanceKm != nil {
		builder = builder.Set("estimated_distance_km", shipmentModifyDB.EstimatedDistanceKm)
	}
	if shipmentModifyDB.AcceptedAt != nil {
		builder = builder.Set("accepted_at", shipmentModifyDB.AcceptedAt)
	}
	if shipmentModifyDB.CurrentLocationPoint != nil {
		builder = builder.Set("current_location_point", sq.Expr("ST_GeomFromEWKT(?)", *shipmentModifyDB.CurrentLocationPoint))
	}

	builder = builder.
		Where(sq.Eq{"id": shipmentModifyDB.ID}).
		Suffix("RETURNING " + selectColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	return r.getOne(ctx, query, args...)
}

// UpdateCurrentLocation обновляет только текущую позицию машины.
func (r *Repository) UpdateCurrentLocation(ctx context.Context, shipmentID int64, point entities.GeoPoint) error {
	query := `UPDATE shipments
		SET current_location_point = ST_GeomFromEWKT($2)
		WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, shipmentID, geo.FormatEWKT(point))
	if err != nil {
		return fmt.Errorf("unexpected shipment repository update location error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shipment.ErrNotFound
	}
	return nil
}

func (r *Repository) ListUnassigned(ctx context.Context) ([]entities.Shipment, error) {
	query := `SELECT ` + selectColumns + `
		FROM shipments
		WHERE status = $1
		ORDER BY created_at DESC`

	return r.list(ctx, query, entities.ShipmentRequested.String())
}

func (r *Repository) ListByShipper(ctx context.Context, shipperID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error) {
	return r.listByParty(ctx, "shipper_id", shipperID, status)
}

func (r *Repository) ListByDriver(ctx context.Context, driverID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error) {
	return r.listByParty(ctx, "driver_id", driverID, status)
}

// ListForSettlement собирает выборку расчетного листа. Все четыре комбинации
// опциональных фильтров статуса собираются одним билдером.
func (r *Repository) ListForSettlement(ctx context.Context, filter entities.SettlementFilter) ([]entities.Shipment, error) {
	partyColumn := "shipper_id"
	if filter.Role == entities.RoleDriver {
		partyColumn = "driver_id"
	}

	builder := qb.
		Select(selectColumns).
		From("shipments").
		Where(sq.Eq{partyColumn: filter.PartyID}).
		Where(sq.GtOrEq{"created_at": filter.From}).
		Where(sq.LtOrEq{"created_at": filter.To}).
		OrderBy("created_at DESC")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.SettlementStatus != nil {
		builder = builder.Where(sq.Eq{"settlement_status": filter.SettlementStatus.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository settlement list error: %w", err)
	}

	return r.list(ctx, query, args...)
}

func (r *Repository) SumPriceByShipperAndPeriod(ctx context.Context, shipperID int64, from, to time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(price), 0)
		FROM shipments
		WHERE shipper_id = $1 AND created_at >= $2 AND created_at <= $3`

	return r.sum(ctx, query, shipperID, from, to)
}

func (r *Repository) SumProfitByDriverAndPeriod(ctx context.Context, driverID int64, from, to time.Time) (int64, error) {
	query := `SELECT COALESCE(SUM(profit), 0)
		FROM shipments
		WHERE driver_id = $1 AND created_at >= $2 AND created_at <= $3`

	return r.sum(ctx, query, driverID, from, to)
}

func (r *Repository) listByParty(ctx context.Context, partyColumn string, partyID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error) {
	builder := qb.
		Select(selectColumns).
		From("shipments").
		Where(sq.Eq{partyColumn: partyID}).
		OrderBy("created_at DESC")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return r.list(ctx, query, args...)
}

func (r *Repository) getOne(ctx context.Context, query string, args ...interface{}) (*entities.Shipment, error) {
	row := r.querier.QueryRow(ctx, query, args...)

	shipmentDB, err := scanShipment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	return ToDomain(shipmentDB)
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Shipment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	shipmentModels := make([]ShipmentDB, 0, 8)
	for rows.Next() {
		shipmentDB, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		shipmentModels = append(shipmentModels, *shipmentDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	return ToDomainList(shipmentModels)
}

func (r *Repository) sum(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var total int64
	err := r.querier.QueryRow(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("unexpected shipment repository sum error: %w", err)
	}
	return total, nil
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var shipmentDB ShipmentDB
	err := row.Scan(
		&shipmentDB.ID,
		&shipmentDB.ShipperID,
		&shipmentDB.DriverID,
		&shipmentDB.Status,
		&shipmentDB.SettlementStatus,
		&shipmentDB.PickupPoint,
		&shipmentDB.PickupAddress,
		&shipmentDB.PickupDesiredAt,
		&shipmentDB.PickupAt,
		&shipmentDB.DropoffPoint,
		&shipmentDB.DropoffAddress,
		&shipmentDB.DropoffDesiredAt,
		&shipmentDB.DropoffAt,
		&shipmentDB.Waypoint1Point,
		&shipmentDB.Waypoint1Address,
		&shipmentDB.Waypoint2Point,
		&shipmentDB.Waypoint2Address,
		&shipmentDB.EstimatedDistanceKm,
		&shipmentDB.Price,
		&shipmentDB.PlatformFee,
		&shipmentDB.Profit,
		&shipmentDB.CargoType,
		&shipmentDB.CargoWeightKg,
		&shipmentDB.CargoVolume,
		&shipmentDB.NeedRefrigerate,
		&shipmentDB.NeedFreeze,
		&shipmentDB.Description,
		&shipmentDB.CargoPhotoURL,
		&shipmentDB.DropoffPhotoURL,
		&shipmentDB.ShipperCancelToggle,
		&shipmentDB.DriverCancelToggle,
		&shipmentDB.CurrentLocationPoint,
		&shipmentDB.CreatedAt,
		&shipmentDB.AcceptedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shipmentDB, nil
}
