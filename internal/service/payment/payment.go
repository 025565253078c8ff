package payment

import (
	"context"
	"fmt"
	"strings"

	"console/internal/entities"
	"console/internal/service"
)

// Service читает журнал платежей из Order API от имени текущей сессии.
type Service struct {
	auth AuthProvider
	api  PaymentAPI
}

func New(auth AuthProvider, api PaymentAPI) *Service {
	return &Service{
		auth: auth,
		api:  api,
	}
}

func (s *Service) Payments(ctx context.Context) ([]entities.PaymentTransaction, error) {
	token, ok := s.auth.AccessToken()
	if !ok {
		return nil, service.ErrAuth
	}

	payments, err := s.api.ListPayments(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	if payments == nil {
		payments = []entities.PaymentTransaction{}
	}
	return payments, nil
}

func (s *Service) Payment(ctx context.Context, id string) (*entities.PaymentTransaction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidPaymentID
	}

	token, ok := s.auth.AccessToken()
	if !ok {
		return nil, service.ErrAuth
	}

	payment, err := s.api.GetPayment(ctx, token, id)
	if err != nil {
		return nil, fmt.Errorf("get payment %s: %w", id, err)
	}
	return payment, nil
}
