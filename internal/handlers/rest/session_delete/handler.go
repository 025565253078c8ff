package session_delete

import (
	"net/http"

	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "session_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP завершает сессию; повторный вызов тоже отвечает 204.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.service.Clear()
	h.log.Info("session cleared")

	w.WriteHeader(http.StatusNoContent)
}
