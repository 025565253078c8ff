package orders_refresh_post

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"console/internal/entities"
	"console/internal/generated/dto"
	"console/internal/handlers/rest/converters"
	"console/internal/service"
	"console/internal/service/ordersync"
	"console/pkg/logger"
	"github.com/AlekSi/pointer"
)

const maxBodyBytes = 4 << 10

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_refresh_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP перезагружает список заказов. Тело запроса необязательно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.OrdersRefreshRequest
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		h.writeError(w, http.StatusBadRequest, "Bad Request", "malformed refresh request")
		return
	}

	filter := entities.OrderFilter{Search: strings.TrimSpace(pointer.Get(req.Search))}

	err = h.service.ManualRefresh(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuth):
			h.writeError(w, http.StatusUnauthorized, "Unauthorized", "session is missing or expired")
		case errors.Is(err, service.ErrFetch):
			h.log.Warn("refresh orders failed", logger.NewField("error", err))
			h.writeError(w, http.StatusBadGateway, "Bad Gateway", "order API is unavailable")
		case errors.Is(err, ordersync.ErrRetired):
			h.writeError(w, http.StatusServiceUnavailable, "Service Unavailable", "order sync is stopped")
		default:
			h.log.Error("refresh orders failed", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, converters.FromOrders(h.service.Orders()))
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
