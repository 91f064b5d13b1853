package locationlog

import (
	"context"
	"fmt"

	"service/internal/entities"
	"service/internal/pkg/geo"
	"service/internal/repository"
)

type Repository struct {
	querier repository.Querier
}

func New(querier repository.Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, logModify entities.LocationLogModify) (*entities.LocationLog, error) {
	logModifyDB := FromDomainModify(&logModify)

	query := `INSERT INTO location_logs (shipment_id, driver_id, point, recorded_at, created_at)
		VALUES ($1, $2, ST_GeomFromEWKT($3), $4, $5)
		RETURNING id, shipment_id, driver_id, ST_AsEWKT(point), recorded_at, created_at`

	var logDB LocationLogDB
	err := r.querier.QueryRow(
		ctx,
		query,
		logModifyDB.ShipmentID,
		logModifyDB.DriverID,
		logModifyDB.Point,
		logModifyDB.RecordedAt,
		logModifyDB.CreatedAt,
	).Scan(
		&logDB.ID,
		&logDB.ShipmentID,
		&logDB.DriverID,
		&logDB.Point,
		&logDB.RecordedAt,
		&logDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected location log repository create error: %w", err)
	}

	point, err := geo.ParseEWKT(logDB.Point)
	if err != nil {
		return nil, fmt.Errorf("unexpected location log repository create error: %w", err)
	}

	return ToDomain(&logDB, point), nil
}
