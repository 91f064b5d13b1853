package shipment

import (
	"fmt"

	"service/internal/entities"
	"service/internal/pkg/geo"
)

func ToDomain(s *ShipmentDB) (*entities.Shipment, error) {
	if s == nil {
		return nil, nil
	}

	pickupPoint, err := geo.ParseEWKT(s.PickupPoint)
	if err != nil {
		return nil, fmt.Errorf("pickup point: %w", err)
	}
	dropoffPoint, err := geo.ParseEWKT(s.DropoffPoint)
	if err != nil {
		return nil, fmt.Errorf("dropoff point: %w", err)
	}
	waypoint1Point, err := geo.ParseEWKTPtr(s.Waypoint1Point)
	if err != nil {
		return nil, fmt.Errorf("waypoint1 point: %w", err)
	}
	waypoint2Point, err := geo.ParseEWKTPtr(s.Waypoint2Point)
	if err != nil {
		return nil, fmt.Errorf("waypoint2 point: %w", err)
	}
	currentLocationPoint, err := geo.ParseEWKTPtr(s.CurrentLocationPoint)
	if err != nil {
		return nil, fmt.Errorf("current location point: %w", err)
	}

	return &entities.Shipment{
		ID:        s.ID,
		ShipperID: s.ShipperID,
		DriverID:  s.DriverID,

		Status:           entities.ShipmentStatusType(s.Status),
		SettlementStatus: entities.SettlementStatusType(s.SettlementStatus),

		PickupPoint:      pickupPoint,
		PickupAddress:    s.PickupAddress,
		PickupDesiredAt:  s.PickupDesiredAt,
		PickupAt:         s.PickupAt,
		DropoffPoint:     dropoffPoint,
		DropoffAddress:   s.DropoffAddress,
		DropoffDesiredAt: s.DropoffDesiredAt,
		DropoffAt:        s.DropoffAt,

		Waypoint1Point:   waypoint1Point,
		Waypoint1Address: s.Waypoint1Address,
		Waypoint2Point:   waypoint2Point,
		Waypoint2Address: s.Waypoint2Address,

		EstimatedDistanceKm: s.EstimatedDistanceKm,

		Price:       s.Price,
		PlatformFee: s.PlatformFee,
		Profit:      s.Profit,

		CargoType:       entities.CargoType(s.CargoType),
		CargoWeightKg:   s.CargoWeightKg,
		CargoVolume:     s.CargoVolume,
		NeedRefrigerate: s.NeedRefrigerate,
		NeedFreeze:      s.NeedFreeze,
		Description:     s.Description,
		CargoPhotoURL:   s.CargoPhotoURL,
		DropoffPhotoURL: s.DropoffPhotoURL,

		ShipperCancelToggle: s.ShipperCancelToggle,
		DriverCancelToggle:  s.DriverCancelToggle,

		CurrentLocationPoint: currentLocationPoint,

		CreatedAt:  s.CreatedAt,
		AcceptedAt: s.AcceptedAt,
	}, nil
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}

	shipmentDB := &ShipmentModifyDB{
		ID:        shipmentModify.ID,
		ShipperID: shipmentModify.ShipperID,
		DriverID:  shipmentModify.DriverID,

		PickupAddress:    shipmentModify.PickupAddress,
		PickupDesiredAt:  shipmentModify.PickupDesiredAt,
		PickupAt:         shipmentModify.PickupAt,
		DropoffAddress:   shipmentModify.DropoffAddress,
		DropoffDesiredAt: shipmentModify.DropoffDesiredAt,
		DropoffAt:        shipmentModify.DropoffAt,

		Waypoint1Address: shipmentModify.Waypoint1Address,
		Waypoint2Address: shipmentModify.Waypoint2Address,

		EstimatedDistanceKm: shipmentModify.EstimatedDistanceKm,

		Price:       shipmentModify.Price,
		PlatformFee: shipmentModify.PlatformFee,
		Profit:      shipmentModify.Profit,

		CargoWeightKg:   shipmentModify.CargoWeightKg,
		CargoVolume:     shipmentModify.CargoVolume,
		NeedRefrigerate: shipmentModify.NeedRefrigerate,
		NeedFreeze:      shipmentModify.NeedFreeze,
		Description:     shipmentModify.Description,
		CargoPhotoURL:   shipmentModify.CargoPhotoURL,
		DropoffPhotoURL: shipmentModify.DropoffPhotoURL,

		CreatedAt:  shipmentModify.CreatedAt,
		AcceptedAt: shipmentModify.AcceptedAt,
	}

	if shipmentModify.Status != nil {
		status := shipmentModify.Status.String()
		shipmentDB.Status = &status
	}
	if shipmentModify.SettlementStatus != nil {
		settlementStatus := shipmentModify.SettlementStatus.String()
		shipmentDB.SettlementStatus = &settlementStatus
	}
	if shipmentModify.CargoType != nil {
		cargoType := shipmentModify.CargoType.String()
		shipmentDB.CargoType = &cargoType
	}

	if shipmentModify.PickupPoint != nil {
		shipmentDB.PickupPoint = geo.FormatEWKTPtr(shipmentModify.PickupPoint)
	}
	if shipmentModify.DropoffPoint != nil {
		shipmentDB.DropoffPoint = geo.FormatEWKTPtr(shipmentModify.DropoffPoint)
	}
	if shipmentModify.Waypoint1Point != nil {
		shipmentDB.Waypoint1Point = geo.FormatEWKTPtr(shipmentModify.Waypoint1Point)
	}
	if shipmentModify.Waypoint2Point != nil {
		shipmentDB.Waypoint2Point = geo.FormatEWKTPtr(shipmentModify.Waypoint2Point)
	}
	if shipmentModify.CurrentLocationPoint != nil {
		shipmentDB.CurrentLocationPoint = geo.FormatEWKTPtr(shipmentModify.CurrentLocationPoint)
	}

	return shipmentDB
}

func ToDomainList(shipmentsDB []ShipmentDB) ([]entities.Shipment, error) {
	if len(shipmentsDB) == 0 {
		return []entities.Shipment{}, nil
	}

	result := make([]entities.Shipment, len(shipmentsDB))
	for i := range shipmentsDB {
		shipment, err := ToDomain(&shipmentsDB[i])
		if err != nil {
			return nil, err
		}
		result[i] = *shipment
	}
	return result, nil
}
