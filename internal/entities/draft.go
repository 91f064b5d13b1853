package entities

import "time"

// ShipmentDraft — проверяемые параметры создания перевозки.
// Валидация обязательных полей происходит в сервисе до персистенции.
type ShipmentDraft struct {
	PickupPoint      GeoPoint
	PickupAddress    string
	PickupDesiredAt  time.Time
	DropoffPoint     GeoPoint
	DropoffAddress   string
	DropoffDesiredAt time.Time

	Waypoint1Point   *GeoPoint
	Waypoint1Address *string
	Waypoint2Point   *GeoPoint
	Waypoint2Address *string

	RequestedPrice float64

	CargoType       CargoType
	CargoWeightKg   float64
	CargoVolume     *string
	NeedRefrigerate bool
	NeedFreeze      bool
	Description     *string
	CargoPhotoURL   *string
}

// SettlementFilter — параметры выборки перевозок для расчетного листа.
// Status и SettlementStatus опциональны, все четыре комбинации допустимы.
type SettlementFilter struct {
	PartyID          int64
	Role             PartyRole
	From             time.Time
	To               time.Time
	Status           *ShipmentStatusType
	SettlementStatus *SettlementStatusType
}
