package notification

import "time"

type NotificationLogDB struct {
	ID            int64
	TargetPartyID int64
	ShipmentID    int64
	Kind          string
	Title         string
	Body          string
	CreatedAt     time.Time
}

type NotificationLogModifyDB struct {
	ID            *int64
	TargetPartyID *int64
	ShipmentID    *int64
	Kind          *string
	Title         *string
	Body          *string
	CreatedAt     *time.Time
}
