//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipments_unassigned_get_test
package shipments_unassigned_get

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListUnassigned(ctx context.Context) ([]entities.Shipment, error)
}
