package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/shipment"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var shipmentCreateDTO dto.ShipmentCreate
	err := json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	draft := entities.ShipmentDraft{
		PickupPoint:      dto.ToGeoPoint(shipmentCreateDTO.PickupPoint),
		PickupAddress:    shipmentCreateDTO.PickupAddress,
		PickupDesiredAt:  shipmentCreateDTO.PickupDesiredAt,
		DropoffPoint:     dto.ToGeoPoint(shipmentCreateDTO.DropoffPoint),
		DropoffAddress:   shipmentCreateDTO.DropoffAddress,
		DropoffDesiredAt: shipmentCreateDTO.DropoffDesiredAt,
		Waypoint1Point:   dto.ToGeoPointPtr(shipmentCreateDTO.Waypoint1Point),
		Waypoint1Address: shipmentCreateDTO.Waypoint1Address,
		Waypoint2Point:   dto.ToGeoPointPtr(shipmentCreateDTO.Waypoint2Point),
		Waypoint2Address: shipmentCreateDTO.Waypoint2Address,
		RequestedPrice:   shipmentCreateDTO.RequestedPrice,
		CargoType:        entities.CargoType(shipmentCreateDTO.CargoType),
		CargoWeightKg:    shipmentCreateDTO.CargoWeightKg,
		CargoVolume:      shipmentCreateDTO.CargoVolume,
		NeedRefrigerate:  shipmentCreateDTO.NeedRefrigerate,
		NeedFreeze:       shipmentCreateDTO.NeedFreeze,
		Description:      shipmentCreateDTO.Description,
		CargoPhotoURL:    shipmentCreateDTO.CargoPhotoURL,
	}

	id, err := h.service.CreateShipment(r.Context(), shipmentCreateDTO.ShipperID, draft)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrPartyNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.ShipmentCreateResponse{
		ID: id,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
