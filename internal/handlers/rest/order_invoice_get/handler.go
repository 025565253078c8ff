package order_invoice_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"console/internal/generated/dto"
	"console/internal/handlers/rest/converters"
	"console/internal/service"
	"console/internal/service/invoice"
	"console/pkg/logger"
	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "order_invoice_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP отдаёт ссылку на счёт; сам документ консоль не проксирует.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	url, err := h.service.InvoiceURL(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, invoice.ErrInvalidOrderCode):
			h.writeError(w, http.StatusBadRequest, "Bad Request", "order code is required")
		case errors.Is(err, invoice.ErrInvoiceNotFound):
			h.writeError(w, http.StatusNotFound, "Not Found", "invoice not found")
		case errors.Is(err, service.ErrAuth):
			h.writeError(w, http.StatusUnauthorized, "Unauthorized", "session is missing or expired")
		case errors.Is(err, service.ErrFetch):
			h.log.Warn("get invoice failed", logger.NewField("order_code", code), logger.NewField("error", err))
			h.writeError(w, http.StatusBadGateway, "Bad Gateway", "order API is unavailable")
		default:
			h.log.Error("get invoice failed", logger.NewField("order_code", code), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, http.StatusOK, dto.Invoice{URL: url})
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
