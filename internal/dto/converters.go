package dto

import (
	"math"

	"service/internal/entities"
)

func FromGeoPoint(point entities.GeoPoint) GeoPoint {
	return GeoPoint{
		Lon: point.Lon,
		Lat: point.Lat,
	}
}

func ToGeoPoint(point GeoPoint) entities.GeoPoint {
	return entities.GeoPoint{
		Lon: point.Lon,
		Lat: point.Lat,
	}
}

func ToGeoPointPtr(point *GeoPoint) *entities.GeoPoint {
	if point == nil {
		return nil
	}
	converted := ToGeoPoint(*point)
	return &converted
}

func FromShipment(shipment *entities.Shipment) Shipment {
	return Shipment{
		ID:               shipment.ID,
		Number:           shipment.Number(),
		Status:           shipment.Status.String(),
		SettlementStatus: shipment.SettlementStatus.String(),
		PickupAddress:    shipment.PickupAddress,
		PickupDesiredAt:  shipment.PickupDesiredAt,
		DropoffAddress:   shipment.DropoffAddress,
		DropoffDesiredAt: shipment.DropoffDesiredAt,
		CargoType:        shipment.CargoType.String(),
		CargoWeightKg:    shipment.CargoWeightKg,
		Price:            shipment.Price,
		CreatedAt:        shipment.CreatedAt,
		AcceptedAt:       shipment.AcceptedAt,
	}
}

func FromShipmentList(shipments []entities.Shipment) ShipmentList {
	converted := make([]Shipment, 0, len(shipments))
	for i := range shipments {
		converted = append(converted, FromShipment(&shipments[i]))
	}
	return ShipmentList{Shipments: converted}
}

// FromShipmentDetail отдает фотографии только когда они включены
// в представление для вызывающего экрана.
func FromShipmentDetail(detail *entities.ShipmentDetail) ShipmentDetail {
	shipment := &detail.Shipment

	converted := ShipmentDetail{
		ID:               shipment.ID,
		Number:           detail.ShipmentNumber,
		Status:           shipment.Status.String(),
		SettlementStatus: shipment.SettlementStatus.String(),
		ShipperName:      detail.ShipperName,
		DriverName:       detail.DriverName,

		PickupPoint:      FromGeoPoint(shipment.PickupPoint),
		PickupAddress:    shipment.PickupAddress,
		PickupDesiredAt:  shipment.PickupDesiredAt,
		PickupAt:         shipment.PickupAt,
		DropoffPoint:     FromGeoPoint(shipment.DropoffPoint),
		DropoffAddress:   shipment.DropoffAddress,
		DropoffDesiredAt: shipment.DropoffDesiredAt,
		DropoffAt:        shipment.DropoffAt,

		Waypoint1Address: shipment.Waypoint1Address,
		Waypoint2Address: shipment.Waypoint2Address,

		DistanceToDestinationKm: roundKmPtr(detail.DistanceToDestinationKm),
		EstimatedArrivalAt:      detail.EstimatedArrivalAt,

		Price:       shipment.Price,
		PlatformFee: shipment.PlatformFee,
		Profit:      shipment.Profit,

		CargoType:        shipment.CargoType.String(),
		CargoDescription: shipment.CargoType.Description(),
		CargoWeightKg:    shipment.CargoWeightKg,
		CargoVolume:      shipment.CargoVolume,
		NeedRefrigerate:  shipment.NeedRefrigerate,
		NeedFreeze:       shipment.NeedFreeze,
		Description:      shipment.Description,

		CreatedAt:  shipment.CreatedAt,
		AcceptedAt: shipment.AcceptedAt,
	}

	if detail.IncludeCargoPhoto {
		converted.CargoPhotoURL = shipment.CargoPhotoURL
	}
	if detail.IncludeDropoffPhoto {
		converted.DropoffPhotoURL = shipment.DropoffPhotoURL
	}

	return converted
}

// roundKmPtr округляет дистанцию до одного знака для отображения,
// в БД оценка хранится без округления.
func roundKmPtr(km *float64) *float64 {
	if km == nil {
		return nil
	}
	rounded := math.Round(*km*10) / 10
	return &rounded
}

func FromSettlementSummary(summary *entities.SettlementSummary) SettlementSummary {
	return SettlementSummary{
		ThisMonthTotal: summary.ThisMonthTotal,
		LastMonthTotal: summary.LastMonthTotal,
		Difference:     summary.Difference,
	}
}

func FromSettlementEntries(entries []entities.SettlementEntry) SettlementList {
	converted := make([]SettlementEntry, 0, len(entries))
	for _, entry := range entries {
		converted = append(converted, SettlementEntry{
			ShipmentID:       entry.ShipmentID,
			ShipmentNumber:   entry.ShipmentNumber,
			Status:           entry.Status.String(),
			SettlementStatus: entry.SettlementStatus.String(),
			PickupAddress:    entry.PickupAddress,
			DropoffAddress:   entry.DropoffAddress,
			Amount:           entry.Amount,
			CreatedAt:        entry.CreatedAt,
			DropoffAt:        entry.DropoffAt,
		})
	}
	return SettlementList{Entries: converted}
}
