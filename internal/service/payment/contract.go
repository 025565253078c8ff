//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"console/internal/entities"
)

type AuthProvider interface {
	AccessToken() (string, bool)
}

// PaymentAPI возвращает ErrPaymentNotFound, если платёж неизвестен.
type PaymentAPI interface {
	ListPayments(ctx context.Context, token string) ([]entities.PaymentTransaction, error)
	GetPayment(ctx context.Context, token string, id string) (*entities.PaymentTransaction, error)
}
