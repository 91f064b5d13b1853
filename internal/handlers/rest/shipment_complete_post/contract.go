//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_complete_post_test
package shipment_complete_post

import (
	"context"

	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Complete(ctx context.Context, driverID, shipmentID int64, dropoffPhotoURL *string) error
}
