//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_list_get_test
package settlement_list_get

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
	List(
		ctx context.Context,
		partyID int64,
		role entities.PartyRole,
		year, month int,
		status *entities.ShipmentStatusType,
		settlementStatus *entities.SettlementStatusType,
	) ([]entities.SettlementEntry, error)
}
