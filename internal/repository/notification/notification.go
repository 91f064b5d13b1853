package notification

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
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

func (r *Repository) Create(ctx context.Context, logModify entities.NotificationLogModify) (*entities.NotificationLog, error) {
	logModifyDB := FromDomainModify(&logModify)

	query := `INSERT INTO notification_logs (target_party_id, shipment_id, kind, title, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, target_party_id, shipment_id, kind, title, body, created_at`

	var logDB NotificationLogDB
	err := r.querier.QueryRow(
		ctx,
		query,
		logModifyDB.TargetPartyID,
		logModifyDB.ShipmentID,
		logModifyDB.Kind,
		logModifyDB.Title,
		logModifyDB.Body,
		logModifyDB.CreatedAt,
	).Scan(
		&logDB.ID,
		&logDB.TargetPartyID,
		&logDB.ShipmentID,
		&logDB.Kind,
		&logDB.Title,
		&logDB.Body,
		&logDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&logDB), nil
}

// DeleteOlderThan удаляет записи журнала, созданные раньше cutoff.
func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM notification_logs
		WHERE created_at < $1`

	tag, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository delete error: %w", err)
	}

	return tag.RowsAffected(), nil
}
