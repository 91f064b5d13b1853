package party

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"service/internal/entities"
	"service/internal/repository"
	"service/internal/service/shipment"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetShipperByID(ctx context.Context, id int64) (*entities.Shipper, error) {
	query := `SELECT id, name, phone, company_name, created_at
		FROM shippers
		WHERE id = $1`

	var shipperModel ShipperDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&shipperModel.ID,
			&shipperModel.Name,
			&shipperModel.Phone,
			&shipperModel.CompanyName,
			&shipperModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrPartyNotFound
		}
		return nil, fmt.Errorf("unexpected party repository get shipper error: %w", err)
	}

	return ToShipperDomain(&shipperModel), nil
}

func (r *Repository) GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error) {
	query := `SELECT id, name, phone, vehicle_number, created_at
		FROM drivers
		WHERE id = $1`

	var driverModel DriverDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&driverModel.ID,
			&driverModel.Name,
			&driverModel.Phone,
			&driverModel.VehicleNumber,
			&driverModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrPartyNotFound
		}
		return nil, fmt.Errorf("unexpected party repository get driver error: %w", err)
	}

	return ToDriverDomain(&driverModel), nil
}

func (r *Repository) ShipperExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM shippers WHERE id = $1)`, id)
}

func (r *Repository) DriverExists(ctx context.Context, id int64) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM drivers WHERE id = $1)`, id)
}

func (r *Repository) exists(ctx context.Context, query string, id int64) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected party repository exists error: %w", err)
	}
	return exists, nil
}
