package invoice

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"console/internal/service"
)

type Service struct {
	auth AuthProvider
	api  InvoiceAPI
}

func New(auth AuthProvider, api InvoiceAPI) *Service {
	return &Service{
		auth: auth,
		api:  api,
	}
}

// InvoiceURL возвращает ссылку на счёт заказа. Ссылка должна быть абсолютной http(s).
func (s *Service) InvoiceURL(ctx context.Context, orderCode string) (string, error) {
	orderCode = strings.TrimSpace(orderCode)
	if orderCode == "" {
		return "", ErrInvalidOrderCode
	}

	token, ok := s.auth.AccessToken()
	if !ok {
		return "", service.ErrAuth
	}

	link, err := s.api.GetInvoiceURL(ctx, token, orderCode)
	if err != nil {
		return "", fmt.Errorf("get invoice %s: %w", orderCode, err)
	}
	if link == "" {
		return "", fmt.Errorf("get invoice %s: %w", orderCode, ErrInvoiceNotFound)
	}

	parsed, err := url.Parse(link)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", fmt.Errorf("get invoice %s: %w: unexpected url %q", orderCode, service.ErrFetch, link)
	}
	return link, nil
}
