package dashboard_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/handlers/rest/converters"
	"console/internal/service"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "dashboard_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдаёт сводку Order API; она не зависит от фильтра синхронизированного списка.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuth):
			h.writeError(w, http.StatusUnauthorized, "Unauthorized", "session is missing or expired")
		case errors.Is(err, service.ErrFetch):
			h.log.Warn("get dashboard failed", logger.NewField("error", err))
			h.writeError(w, http.StatusBadGateway, "Bad Gateway", "order API is unavailable")
		default:
			h.log.Error("get dashboard failed", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	h.writeJSON(w, http.StatusOK, converters.FromDashboardStats(*stats))
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
