package entities

import "time"

type Shipper struct {
	ID          int64
	Name        string
	Phone       string
	CompanyName string
	CreatedAt   time.Time
}

type Driver struct {
	ID            int64
	Name          string
	Phone         string
	VehicleNumber string
	CreatedAt     time.Time
}

// PartyRole задает сторону сделки в запросах расчетов и списков.
type PartyRole string

const (
	RoleShipper PartyRole = "shipper"
	RoleDriver  PartyRole = "driver"
)

func (r PartyRole) String() string {
	return string(r)
}
