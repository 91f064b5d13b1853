//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_accept_detail_get_test
package shipment_accept_detail_get

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
	AcceptDetail(ctx context.Context, shipmentID int64) (*entities.ShipmentDetail, error)
}
