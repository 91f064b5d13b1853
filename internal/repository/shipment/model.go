package shipment

import "time"

type ShipmentDB struct {
	ID        int64
	ShipperID int64
	DriverID  *int64

	Status           string
	SettlementStatus string

	PickupPoint      string
	PickupAddress    string
	PickupDesiredAt  time.Time
	PickupAt         *time.Time
	DropoffPoint     string
	DropoffAddress   string
	DropoffDesiredAt time.Time
	DropoffAt        *time.Time

	Waypoint1Point   *string
	Waypoint1Address *string
	Waypoint2Point   *string
	Waypoint2Address *string

	EstimatedDistanceKm *float64

	Price       int64
	PlatformFee int64
	Profit      int64

	CargoType       string
	CargoWeightKg   float64
	CargoVolume     *string
	NeedRefrigerate bool
	NeedFreeze      bool
	Description     *string
	CargoPhotoURL   *string
	DropoffPhotoURL *string

	ShipperCancelToggle bool
	DriverCancelToggle  bool

	CurrentLocationPoint *string

	CreatedAt  time.Time
	AcceptedAt *time.Time
}

type ShipmentModifyDB struct {
	ID        *int64
	ShipperID *int64
	DriverID  *int64

	Status           *string
	SettlementStatus *string

	PickupPoint      *string
	PickupAddress    *string
	PickupDesiredAt  *time.Time
	PickupAt         *time.Time
	DropoffPoint     *string
	DropoffAddress   *string
	DropoffDesiredAt *time.Time
	DropoffAt        *time.Time

	Waypoint1Point   *string
	Waypoint1Address *string
	Waypoint2Point   *string
	Waypoint2Address *string

	EstimatedDistanceKm *float64

	Price       *int64
	PlatformFee *int64
	Profit      *int64

	CargoType       *string
	CargoWeightKg   *float64
	CargoVolume     *string
	NeedRefrigerate *bool
	NeedFreeze      *bool
	Description     *string
	CargoPhotoURL   *string
	DropoffPhotoURL *string

	CurrentLocationPoint *string

	CreatedAt  *time.Time
	AcceptedAt *time.Time
}
