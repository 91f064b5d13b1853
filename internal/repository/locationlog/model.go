package locationlog

import "time"

type LocationLogDB struct {
	ID         int64
	ShipmentID int64
	DriverID   int64
	Point      string
	RecordedAt time.Time
	CreatedAt  time.Time
}

type LocationLogModifyDB struct {
	ID         *int64
	ShipmentID *int64
	DriverID   *int64
	Point      *string
	RecordedAt *time.Time
	CreatedAt  *time.Time
}
