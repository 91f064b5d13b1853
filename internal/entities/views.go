package entities

import "time"

// ShipmentDetail — представление перевозки для экранов деталей.
// ETA и дистанция опциональны: при недоступном маршрутизаторе остаются nil.
type ShipmentDetail struct {
	Shipment       Shipment
	ShipmentNumber string
	ShipperName    string
	DriverName     *string

	// DistanceToDestinationKm — полный маршрут до выезда, остаток пути после.
	DistanceToDestinationKm *float64
	EstimatedArrivalAt      *time.Time

	IncludeCargoPhoto   bool
	IncludeDropoffPhoto bool
}

type SettlementSummary struct {
	ThisMonthTotal int64
	LastMonthTotal int64
	Difference     int64
}

type SettlementEntry struct {
	ShipmentID       int64
	ShipmentNumber   string
	Status           ShipmentStatusType
	SettlementStatus SettlementStatusType
	PickupAddress    string
	DropoffAddress   string
	Amount           int64
	CreatedAt        time.Time
	DropoffAt        *time.Time
}
