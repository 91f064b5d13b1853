//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eta_test
package eta

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
}

type PartyStore interface {
	GetShipperByID(ctx context.Context, id int64) (*entities.Shipper, error)
	GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error)
}

type RoutingClient interface {
	Route(ctx context.Context, start, goal entities.GeoPoint, waypoints []entities.GeoPoint) (*entities.RouteSummary, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
