//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_summary_get_test
package settlement_summary_get

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
	Summary(ctx context.Context, partyID int64, role entities.PartyRole) (*entities.SettlementSummary, error)
}
