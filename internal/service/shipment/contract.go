//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)

	ListUnassigned(ctx context.Context) ([]entities.Shipment, error)
	ListByShipper(ctx context.Context, shipperID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error)
	ListByDriver(ctx context.Context, driverID int64, status *entities.ShipmentStatusType) ([]entities.Shipment, error)
}

type PartyStore interface {
	GetShipperByID(ctx context.Context, id int64) (*entities.Shipper, error)
	GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error)
	DriverExists(ctx context.Context, id int64) (bool, error)
}

type RoutingClient interface {
	Route(ctx context.Context, start, goal entities.GeoPoint, waypoints []entities.GeoPoint) (*entities.RouteSummary, error)
}

type PricingEngine interface {
	Derive(requestedPrice float64) (entities.Pricing, error)
}

type Notifier interface {
	NotifyAssignmentConfirmed(ctx context.Context, shipmentID int64) error
	NotifyTransportStarted(ctx context.Context, shipmentID int64) error
	NotifyTransportCompleted(ctx context.Context, shipmentID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
