package entities

import "time"

type NotificationKind string

const (
	NotificationAssignmentConfirmed NotificationKind = "ASSIGNMENT_CONFIRMED"
	NotificationTransportStarted    NotificationKind = "TRANSPORT_STARTED"
	NotificationTransportCompleted  NotificationKind = "TRANSPORT_COMPLETED"
)

func (k NotificationKind) String() string {
	return string(k)
}

type NotificationLog struct {
	ID            int64
	TargetPartyID int64
	ShipmentID    int64
	Kind          NotificationKind
	Title         string
	Body          string
	CreatedAt     time.Time
}

type NotificationLogModify struct {
	ID            *int64
	TargetPartyID *int64
	ShipmentID    *int64
	Kind          *NotificationKind
	Title         *string
	Body          *string
	CreatedAt     *time.Time
}
