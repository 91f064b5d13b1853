package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type GeoPoint struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

type ShipmentCreate struct {
	ShipperID int64 `json:"shipper_id"`

	PickupPoint      GeoPoint  `json:"pickup_point"`
	PickupAddress    string    `json:"pickup_address"`
	PickupDesiredAt  time.Time `json:"pickup_desired_at"`
	DropoffPoint     GeoPoint  `json:"dropoff_point"`
	DropoffAddress   string    `json:"dropoff_address"`
	DropoffDesiredAt time.Time `json:"dropoff_desired_at"`

	Waypoint1Point   *GeoPoint `json:"waypoint1_point,omitempty"`
	Waypoint1Address *string   `json:"waypoint1_address,omitempty"`
	Waypoint2Point   *GeoPoint `json:"waypoint2_point,omitempty"`
	Waypoint2Address *string   `json:"waypoint2_address,omitempty"`

	RequestedPrice float64 `json:"requested_price"`

	CargoType       string  `json:"cargo_type"`
	CargoWeightKg   float64 `json:"cargo_weight_kg"`
	CargoVolume     *string `json:"cargo_volume,omitempty"`
	NeedRefrigerate bool    `json:"need_refrigerate"`
	NeedFreeze      bool    `json:"need_freeze"`
	Description     *string `json:"description,omitempty"`
	CargoPhotoURL   *string `json:"cargo_photo_url,omitempty"`
}

type ShipmentCreateResponse struct {
	ID int64 `json:"id"`
}

type ShipmentAction struct {
	DriverID int64 `json:"driver_id"`
}

type ShipmentComplete struct {
	DriverID        int64   `json:"driver_id"`
	DropoffPhotoURL *string `json:"dropoff_photo_url,omitempty"`
}

type Shipment struct {
	ID               int64      `json:"id"`
	Number           string     `json:"number"`
	Status           string     `json:"status"`
	SettlementStatus string     `json:"settlement_status"`
	PickupAddress    string     `json:"pickup_address"`
	PickupDesiredAt  time.Time  `json:"pickup_desired_at"`
	DropoffAddress   string     `json:"dropoff_address"`
	DropoffDesiredAt time.Time  `json:"dropoff_desired_at"`
	CargoType        string     `json:"cargo_type"`
	CargoWeightKg    float64    `json:"cargo_weight_kg"`
	Price            int64      `json:"price"`
	CreatedAt        time.Time  `json:"created_at"`
	AcceptedAt       *time.Time `json:"accepted_at,omitempty"`
}

type ShipmentList struct {
	Shipments []Shipment `json:"shipments"`
}

type ShipmentDetail struct {
	ID               int64   `json:"id"`
	Number           string  `json:"number"`
	Status           string  `json:"status"`
	SettlementStatus string  `json:"settlement_status"`
	ShipperName      string  `json:"shipper_name"`
	DriverName       *string `json:"driver_name,omitempty"`

	PickupPoint      GeoPoint   `json:"pickup_point"`
	PickupAddress    string     `json:"pickup_address"`
	PickupDesiredAt  time.Time  `json:"pickup_desired_at"`
	PickupAt         *time.Time `json:"pickup_at,omitempty"`
	DropoffPoint     GeoPoint   `json:"dropoff_point"`
	DropoffAddress   string     `json:"dropoff_address"`
	DropoffDesiredAt time.Time  `json:"dropoff_desired_at"`
	DropoffAt        *time.Time `json:"dropoff_at,omitempty"`

	Waypoint1Address *string `json:"waypoint1_address,omitempty"`
	Waypoint2Address *string `json:"waypoint2_address,omitempty"`

	DistanceToDestinationKm *float64   `json:"distance_to_destination_km,omitempty"`
	EstimatedArrivalAt      *time.Time `json:"estimated_arrival_at,omitempty"`

	Price       int64 `json:"price"`
	PlatformFee int64 `json:"platform_fee"`
	Profit      int64 `json:"profit"`

	CargoType        string  `json:"cargo_type"`
	CargoDescription string  `json:"cargo_description"`
	CargoWeightKg    float64 `json:"cargo_weight_kg"`
	CargoVolume      *string `json:"cargo_volume,omitempty"`
	NeedRefrigerate  bool    `json:"need_refrigerate"`
	NeedFreeze       bool    `json:"need_freeze"`
	Description      *string `json:"description,omitempty"`
	CargoPhotoURL    *string `json:"cargo_photo_url,omitempty"`
	DropoffPhotoURL  *string `json:"dropoff_photo_url,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	AcceptedAt *time.Time `json:"accepted_at,omitempty"`
}

type SettlementSummary struct {
	ThisMonthTotal int64 `json:"this_month_total"`
	LastMonthTotal int64 `json:"last_month_total"`
	Difference     int64 `json:"difference"`
}

type SettlementEntry struct {
	ShipmentID       int64      `json:"shipment_id"`
	ShipmentNumber   string     `json:"shipment_number"`
	Status           string     `json:"status"`
	SettlementStatus string     `json:"settlement_status"`
	PickupAddress    string     `json:"pickup_address"`
	DropoffAddress   string     `json:"dropoff_address"`
	Amount           int64      `json:"amount"`
	CreatedAt        time.Time  `json:"created_at"`
	DropoffAt        *time.Time `json:"dropoff_at,omitempty"`
}

type SettlementList struct {
	Entries []SettlementEntry `json:"entries"`
}
