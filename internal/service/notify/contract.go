//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notify_test
package notify

import (
	"context"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

type ShipmentStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
}

type Repository interface {
	Create(ctx context.Context, logModify entities.NotificationLogModify) (*entities.NotificationLog, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type Sender interface {
	Send(ctx context.Context, targetPartyID int64, title, body string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
