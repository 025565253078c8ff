package session_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"console/internal/generated/dto"
	"console/internal/service/session"
	"console/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	loader  OrdersLoader
}

func New(log handlerLogger, service Service, loader OrdersLoader) *Handler {
	handlerLog := log.With(logger.NewField("handler", "session_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
		loader:  loader,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionPutRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	err = h.service.Set(req.AccessToken, expiresAt)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyToken),
			errors.Is(err, session.ErrTokenExpired):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("session installed")

	// список подгружается сразу после входа; сбой не отменяет сессию
	if err := h.loader.Resync(r.Context()); err != nil {
		h.log.Warn("load orders after login", logger.NewField("error", err))
	}

	w.WriteHeader(http.StatusNoContent)
}
