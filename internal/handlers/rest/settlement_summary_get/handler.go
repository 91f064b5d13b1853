package settlement_summary_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"service/internal/dto"
	"service/internal/entities"
	"service/internal/service/settlement"
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

	role := entities.PartyRole(query.Get("role"))

	summary, err := h.service.Summary(r.Context(), partyID, role)
	if err != nil {
		switch {
		case errors.Is(err, settlement.ErrInvalidArgument):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, settlement.ErrRoleDenied):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromSettlementSummary(summary)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
