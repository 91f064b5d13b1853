package shipments_my_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	query := r.URL.Query()

	partyID, err := strconv.ParseInt(query.Get("party_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status, ok := parseStatus(query.Get("status"))
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var shipmentEntities []entities.Shipment
	switch entities.PartyRole(query.Get("role")) {
	case entities.RoleShipper:
		shipmentEntities, err = h.service.ListByShipper(r.Context(), partyID, status)
	case entities.RoleDriver:
		shipmentEntities, err = h.service.ListByDriver(r.Context(), partyID, status)
	default:
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromShipmentList(shipmentEntities)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseStatus(raw string) (*entities.ShipmentStatusType, bool) {
	if raw == "" {
		return nil, true
	}

	status := entities.ShipmentStatusType(raw)
	switch status {
	case entities.ShipmentRequested,
		entities.ShipmentAssigned,
		entities.ShipmentInTransit,
		entities.ShipmentDone,
		entities.ShipmentCanceled:
		return &status, true
	default:
		return nil, false
	}
}
