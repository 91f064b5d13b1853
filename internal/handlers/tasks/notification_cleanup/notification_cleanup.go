package notification_cleanup

import (
	"context"
	"time"

	"service/pkg/logger"
)

type Service interface {
	CleanupOldLogs(ctx context.Context, retention time.Duration) (int64, error)
}

type NotificationCleanup struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	retention time.Duration
}

func NewNotificationCleanup(log logger.Logger, service Service, interval, retention time.Duration) *NotificationCleanup {
	return &NotificationCleanup{
		log:       log,
		service:   service,
		interval:  interval,
		retention: retention,
	}
}

func (n *NotificationCleanup) TTL() time.Duration {
	return n.interval
}

func (n *NotificationCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	rowsAffected, err := n.service.CleanupOldLogs(ctxWithTimeout, n.retention)

	if rowsAffected > 0 {
		n.log.With(
			logger.NewField("deleted_notifications", rowsAffected),
		).Info("notification cleanup")
	}

	return err
}

func (n *NotificationCleanup) Info() string {
	return "notification cleanup"
}
