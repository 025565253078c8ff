package payment_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/converters"
	"console/internal/service"
	"console/internal/service/payment"
	"console/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "payment_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	res, err := h.service.Payment(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPaymentID):
			h.writeError(w, http.StatusBadRequest, "Bad Request", "payment id is required")
		case errors.Is(err, payment.ErrPaymentNotFound):
			h.writeError(w, http.StatusNotFound, "Not Found", "payment not found")
		case errors.Is(err, service.ErrAuth):
			h.writeError(w, http.StatusUnauthorized, "Unauthorized", "session is missing or expired")
		case errors.Is(err, service.ErrFetch):
			h.log.Warn("get payment failed", logger.NewField("payment_id", id), logger.NewField("error", err))
			h.writeError(w, http.StatusBadGateway, "Bad Gateway", "order API is unavailable")
		default:
			h.log.Error("get payment failed", logger.NewField("payment_id", id), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, converters.FromPayment(*res))
}

func (h *Handler) writeError(w http.ResponseWriter, status int, title, message string) {
	h.writeJSON(w, status, converters.NewError(title, message))
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
