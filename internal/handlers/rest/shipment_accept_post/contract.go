//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_accept_post_test
package shipment_accept_post

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
	Accept(ctx context.Context, driverID, shipmentID int64) error
}
