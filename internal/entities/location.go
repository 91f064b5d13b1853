package entities

import "time"

// LocationLog — точка трека водителя, принимается из Kafka воркером локаций.
type LocationLog struct {
	ID         int64
	ShipmentID int64
	DriverID   int64
	Point      GeoPoint
	RecordedAt time.Time
	CreatedAt  time.Time
}

type LocationLogModify struct {
	ID         *int64
	ShipmentID *int64
	DriverID   *int64
	Point      *GeoPoint
	RecordedAt *time.Time
	CreatedAt  *time.Time
}
