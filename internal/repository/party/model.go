package party

import "time"

type ShipperDB struct {
	ID          int64
	Name        string
	Phone       string
	CompanyName string
	CreatedAt   time.Time
}

type DriverDB struct {
	ID            int64
	Name          string
	Phone         string
	VehicleNumber string
	CreatedAt     time.Time
}
