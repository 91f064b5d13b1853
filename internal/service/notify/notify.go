package notify

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
	"service/pkg/logger"
)

// Notify отправляет отправителю push о смене статуса его перевозки
// и пишет каждое отправленное уведомление в журнал.
type Notify struct {
	shipmentStore ShipmentStore
	repository    Repository
	sender        Sender
	logger        serviceLogger
}

func New(shipmentStore ShipmentStore, repository Repository, sender Sender, logger serviceLogger) *Notify {
	return &Notify{
		shipmentStore: shipmentStore,
		repository:    repository,
		sender:        sender,
		logger:        logger,
	}
}

func (s *Notify) NotifyAssignmentConfirmed(ctx context.Context, shipmentID int64) error {
	return s.notifyShipper(ctx, shipmentID, entities.NotificationAssignmentConfirmed,
		"Машина назначена",
		func(shipment *entities.Shipment) string {
			return fmt.Sprintf("%s: машина назначена.", routeSummary(shipment))
		},
	)
}

func (s *Notify) NotifyTransportStarted(ctx context.Context, shipmentID int64) error {
	return s.notifyShipper(ctx, shipmentID, entities.NotificationTransportStarted,
		"Перевозка началась",
		func(shipment *entities.Shipment) string {
			return fmt.Sprintf("%s: перевозка началась.", routeSummary(shipment))
		},
	)
}

func (s *Notify) NotifyTransportCompleted(ctx context.Context, shipmentID int64) error {
	return s.notifyShipper(ctx, shipmentID, entities.NotificationTransportCompleted,
		"Перевозка завершена",
		func(shipment *entities.Shipment) string {
			return fmt.Sprintf("%s: перевозка завершена.", routeSummary(shipment))
		},
	)
}

// CleanupOldLogs удаляет записи журнала старше retention. Возвращает число
// удаленных строк.
func (s *Notify) CleanupOldLogs(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, ErrInvalidArgument
	}

	cutoff := time.Now().UTC().Add(-retention)
	rowsAffected, err := s.repository.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old notification logs: %w", err)
	}
	return rowsAffected, nil
}

func (s *Notify) notifyShipper(ctx context.Context, shipmentID int64, kind entities.NotificationKind, title string, bodyMaker func(*entities.Shipment) string) error {
	if shipmentID <= 0 {
		return ErrInvalidArgument
	}

	shipment, err := s.shipmentStore.GetByID(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("get shipment: %w", err)
	}

	body := bodyMaker(shipment)
	if err := s.sender.Send(ctx, shipment.ShipperID, title, body); err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	createdAt := time.Now().UTC()
	_, err = s.repository.Create(ctx, entities.NotificationLogModify{
		TargetPartyID: &shipment.ShipperID,
		ShipmentID:    &shipmentID,
		Kind:          &kind,
		Title:         &title,
		Body:          &body,
		CreatedAt:     &createdAt,
	})
	if err != nil {
		// уведомление уже ушло, потеря строки журнала не повод для ретрая
		s.logger.Warn("notification sent but log write failed",
			logger.NewField("shipment_id", shipmentID),
			logger.NewField("kind", kind.String()),
			logger.NewField("error", err.Error()),
		)
	}

	return nil
}

func routeSummary(shipment *entities.Shipment) string {
	return fmt.Sprintf("%s, %s > %s",
		shipment.CargoType.Description(),
		shipment.PickupAddress,
		shipment.DropoffAddress,
	)
}
