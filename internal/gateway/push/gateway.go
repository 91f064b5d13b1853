package push

import (
	"context"

	"service/pkg/logger"
)

// PushGateway — заглушка транспорта push-уведомлений. Пишет уведомление в
// структурированный лог. Реальная доставка на устройства подключается здесь,
// не затрагивая сервис уведомлений.
type PushGateway struct {
	logger gatewayLogger
}

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
}

func New(logger gatewayLogger) *PushGateway {
	return &PushGateway{logger: logger}
}

func (g *PushGateway) Send(_ context.Context, targetPartyID int64, title, body string) error {
	g.logger.Info("push notification",
		logger.NewField("target_party_id", targetPartyID),
		logger.NewField("title", title),
		logger.NewField("body", body),
	)
	return nil
}
