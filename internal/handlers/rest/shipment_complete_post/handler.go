package shipment_complete_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/dto"
	"service/internal/service/shipment"
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
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var completeDTO dto.ShipmentComplete
	err = json.NewDecoder(r.Body).Decode(&completeDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	err = h.service.Complete(r.Context(), completeDTO.DriverID, shipmentID, completeDTO.DropoffPhotoURL)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, shipment.ErrRoleDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, shipment.ErrStateConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
