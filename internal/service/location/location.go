package location

import (
	"context"
	"fmt"
	"time"

	"service/internal/entities"
)

// Location принимает точки трека водителя и поддерживает актуальную позицию
// машины на перевозке. Позиция используется при расчете остатка пути.
type Location struct {
	repository    Repository
	shipmentStore ShipmentStore
	txManager     TxManager
}

func New(repository Repository, shipmentStore ShipmentStore, txManager TxManager) *Location {
	return &Location{
		repository:    repository,
		shipmentStore: shipmentStore,
		txManager:     txManager,
	}
}

// RecordLocation пишет точку трека и обновляет текущую позицию перевозки.
// Точки принимаются только от назначенного водителя и только пока машина в пути.
func (s *Location) RecordLocation(ctx context.Context, driverID, shipmentID int64, point entities.GeoPoint, recordedAt time.Time) error {
	if driverID <= 0 || shipmentID <= 0 {
		return ErrInvalidArgument
	}
	if recordedAt.IsZero() {
		return ErrInvalidArgument
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.shipmentStore.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.DriverID == nil || *shipment.DriverID != driverID {
			return fmt.Errorf("driver %d, shipment %d: %w", driverID, shipmentID, ErrNotAssigned)
		}
		if shipment.Status != entities.ShipmentInTransit {
			return fmt.Errorf("shipment %d in status %s: %w", shipmentID, shipment.Status, ErrNotInTransit)
		}

		createdAt := time.Now().UTC()
		_, err = s.repository.Create(ctx, entities.LocationLogModify{
			ShipmentID: &shipmentID,
			DriverID:   &driverID,
			Point:      &point,
			RecordedAt: &recordedAt,
			CreatedAt:  &createdAt,
		})
		if err != nil {
			return fmt.Errorf("create location log: %w", err)
		}

		if err := s.shipmentStore.UpdateCurrentLocation(ctx, shipmentID, point); err != nil {
			return fmt.Errorf("update current location: %w", err)
		}
		return nil
	})
}
