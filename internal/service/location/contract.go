//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=location_test
package location

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, logModify entities.LocationLogModify) (*entities.LocationLog, error)
}

type ShipmentStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	UpdateCurrentLocation(ctx context.Context, shipmentID int64, point entities.GeoPoint) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
