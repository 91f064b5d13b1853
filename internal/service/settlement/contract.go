//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_test
package settlement

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	ListForSettlement(ctx context.Context, filter entities.SettlementFilter) ([]entities.Shipment, error)

	SumPriceByShipperAndPeriod(ctx context.Context, shipperID int64, from, to time.Time) (int64, error)
	SumProfitByDriverAndPeriod(ctx context.Context, driverID int64, from, to time.Time) (int64, error)
}

type PartyStore interface {
	GetShipperByID(ctx context.Context, id int64) (*entities.Shipper, error)
	GetDriverByID(ctx context.Context, id int64) (*entities.Driver, error)
	ShipperExists(ctx context.Context, id int64) (bool, error)
	DriverExists(ctx context.Context, id int64) (bool, error)
}
