package orders_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"console/internal/entities"
	"console/internal/handlers/rest/converters"
	"console/internal/service/ordersync"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "orders_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдаёт синхронизированный список; ?code= сужает его до одного заказа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orders []entities.Order

	code := strings.TrimSpace(r.URL.Query().Get("code"))
	if code == "" {
		orders = h.service.Orders()
	} else {
		order, err := h.service.OrderByCode(code)
		switch {
		case err == nil:
			orders = []entities.Order{*order}
		case errors.Is(err, ordersync.ErrOrderNotFound):
			orders = nil
		default:
			h.log.Error("lookup order by code", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(converters.FromOrders(orders))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
