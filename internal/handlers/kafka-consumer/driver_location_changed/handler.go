package driver_location_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	locationservice "service/internal/service/location"
	shipmentservice "service/internal/service/shipment"
	"service/pkg/logger"
)

type locationEvent struct {
	DriverID   int64     `json:"driver_id"`
	ShipmentID int64     `json:"shipment_id"`
	Lon        float64   `json:"lon"`
	Lat        float64   `json:"lat"`
	RecordedAt time.Time `json:"recorded_at"`
}

type Handler struct {
	locationService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, locationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		locationService:          locationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("driver.location.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("driver.location.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event locationEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("driver.location.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("driver", event.DriverID),
		logger.NewField("shipment", event.ShipmentID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("driver.location.changed processing")

	point := entities.GeoPoint{Lon: event.Lon, Lat: event.Lat}

	err = h.locationService.RecordLocation(ctx, event.DriverID, event.ShipmentID, point, event.RecordedAt)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location.changed handler shipment not found")

		case errors.Is(err, locationservice.ErrNotAssigned):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location.changed handler driver is not assigned to shipment")

		case errors.Is(err, locationservice.ErrNotInTransit):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location.changed handler shipment is not in transit")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("driver.location.changed handler failed to record location")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("driver.location.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
