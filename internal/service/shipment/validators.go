package shipment

import (
	"strings"

	"service/internal/entities"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidCargoType(cargoType entities.CargoType) bool {
	switch cargoType {
	case entities.CargoGeneral,
		entities.CargoPallet,
		entities.CargoLong,
		entities.CargoHeavy,
		entities.CargoMoving,
		entities.CargoBulk,
		entities.CargoHazardous:
		return true
	default:
		return false
	}
}

func isValidDraft(draft entities.ShipmentDraft) bool {
	if !isValidAddress(draft.PickupAddress) || !isValidAddress(draft.DropoffAddress) {
		return false
	}
	if !isValidCargoType(draft.CargoType) {
		return false
	}
	if draft.CargoWeightKg <= 0 {
		return false
	}
	if draft.DropoffDesiredAt.Before(draft.PickupDesiredAt) {
		return false
	}
	return true
}
