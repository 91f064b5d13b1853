package entities

import (
	"fmt"
	"time"
)

type Shipment struct {
	ID        int64
	ShipperID int64
	DriverID  *int64

	Status           ShipmentStatusType
	SettlementStatus SettlementStatusType

	PickupPoint      GeoPoint
	PickupAddress    string
	PickupDesiredAt  time.Time
	PickupAt         *time.Time
	DropoffPoint     GeoPoint
	DropoffAddress   string
	DropoffDesiredAt time.Time
	DropoffAt        *time.Time

	Waypoint1Point   *GeoPoint
	Waypoint1Address *string
	Waypoint2Point   *GeoPoint
	Waypoint2Address *string

	// EstimatedDistanceKm проставляется один раз при создании из ответа
	// маршрутизатора; nil если маршрутизатор был недоступен.
	EstimatedDistanceKm *float64

	Price       int64
	PlatformFee int64
	Profit      int64

	CargoType       CargoType
	CargoWeightKg   float64
	CargoVolume     *string
	NeedRefrigerate bool
	NeedFreeze      bool
	Description     *string
	CargoPhotoURL   *string
	DropoffPhotoURL *string

	ShipperCancelToggle bool
	DriverCancelToggle  bool

	// CurrentLocationPoint обновляется воркером локаций, не сервисом перевозок.
	CurrentLocationPoint *GeoPoint

	CreatedAt  time.Time
	AcceptedAt *time.Time
}

// Number формирует номер перевозки вида GEN-260211-001:
// код типа груза, дата создания (yyMMdd), последние три цифры ID.
func (s *Shipment) Number() string {
	return fmt.Sprintf("%s-%s-%03d",
		s.CargoType.Code(),
		s.CreatedAt.Format("060102"),
		s.ID%1000,
	)
}

type ShipmentModify struct {
	ID        *int64
	ShipperID *int64
	DriverID  *int64

	Status           *ShipmentStatusType
	SettlementStatus *SettlementStatusType

	PickupPoint      *GeoPoint
	PickupAddress    *string
	PickupDesiredAt  *time.Time
	PickupAt         *time.Time
	DropoffPoint     *GeoPoint
	DropoffAddress   *string
	DropoffDesiredAt *time.Time
	DropoffAt        *time.Time

	Waypoint1Point   *GeoPoint
	Waypoint1Address *string
	Waypoint2Point   *GeoPoint
	Waypoint2Address *string

	EstimatedDistanceKm *float64

	Price       *int64
	PlatformFee *int64
	Profit      *int64

	CargoType       *CargoType
	CargoWeightKg   *float64
	CargoVolume     *string
	NeedRefrigerate *bool
	NeedFreeze      *bool
	Description     *string
	CargoPhotoURL   *string
	DropoffPhotoURL *string

	CurrentLocationPoint *GeoPoint

	CreatedAt  *time.Time
	AcceptedAt *time.Time
}

type ShipmentStatusType string

const (
	ShipmentRequested ShipmentStatusType = "REQUESTED"
	ShipmentAssigned  ShipmentStatusType = "ASSIGNED"
	ShipmentInTransit ShipmentStatusType = "IN_TRANSIT"
	ShipmentDone      ShipmentStatusType = "DONE"
	ShipmentCanceled  ShipmentStatusType = "CANCELED"
)

func (t ShipmentStatusType) String() string {
	return string(t)
}

type SettlementStatusType string

const (
	SettlementIneligible SettlementStatusType = "INELIGIBLE"
	SettlementReady      SettlementStatusType = "READY"
	SettlementPaid       SettlementStatusType = "PAID"
)

func (t SettlementStatusType) String() string {
	return string(t)
}

type CargoType string

const (
	CargoGeneral   CargoType = "GENERAL"
	CargoPallet    CargoType = "PALLET"
	CargoLong      CargoType = "LONG_CARGO"
	CargoHeavy     CargoType = "HEAVY"
	CargoMoving    CargoType = "MOVING"
	CargoBulk      CargoType = "BULK"
	CargoHazardous CargoType = "HAZARDOUS"
)

func (t CargoType) String() string {
	return string(t)
}

// Code возвращает короткий код для номера перевозки.
func (t CargoType) Code() string {
	switch t {
	case CargoGeneral:
		return "GEN"
	case CargoPallet:
		return "PAL"
	case CargoLong:
		return "LNG"
	case CargoHeavy:
		return "HVY"
	case CargoMoving:
		return "MOV"
	case CargoBulk:
		return "BLK"
	case CargoHazardous:
		return "HAZ"
	default:
		return "GEN"
	}
}

// Description возвращает подпись типа груза для UI.
func (t CargoType) Description() string {
	switch t {
	case CargoGeneral:
		return "general cargo"
	case CargoPallet:
		return "palletized cargo"
	case CargoLong:
		return "oversized length cargo"
	case CargoHeavy:
		return "heavy cargo"
	case CargoMoving:
		return "household moving"
	case CargoBulk:
		return "bulk cargo"
	case CargoHazardous:
		return "hazardous materials"
	default:
		return "general cargo"
	}
}

// Pricing — разбивка стоимости, рассчитанная при создании перевозки.
type Pricing struct {
	Price       int64
	PlatformFee int64
	Profit      int64
}
