package settlement_detail_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/dto"
	"service/internal/service/settlement"
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
	idStr := mux.Vars(r)["id"]
	shipmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	callerID, err := strconv.ParseInt(r.URL.Query().Get("party_id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	detail, err := h.service.Detail(r.Context(), callerID, shipmentID)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, settlement.ErrRoleDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, settlement.ErrNotCompleted):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	detailDTO := dto.FromShipmentDetail(detail)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(detailDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
