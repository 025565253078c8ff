package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"console/internal/handlers/rest/converters"
	"console/internal/service"
	"console/internal/service/ordersync"
	"console/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		h.writeError(w, http.StatusBadRequest, "Bad Request", "order id is required")
		return
	}

	order, err := h.service.FindOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ordersync.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, "Not Found", "order not found")
		case errors.Is(err, service.ErrAuth):
			h.writeError(w, http.StatusUnauthorized, "Unauthorized", "session is missing or expired")
		case errors.Is(err, service.ErrFetch):
			h.log.Warn("get order failed", logger.NewField("order_id", id), logger.NewField("error", err))
			h.writeError(w, http.StatusBadGateway, "Bad Gateway", "order API is unavailable")
		case errors.Is(err, ordersync.ErrRetired):
			h.writeError(w, http.StatusServiceUnavailable, "Service Unavailable", "order sync is stopped")
		default:
			h.log.Error("get order failed", logger.NewField("order_id", id), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, converters.FromOrder(*order))
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
