//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_test
package invoice

import (
	"context"
)

type AuthProvider interface {
	AccessToken() (string, bool)
}

// InvoiceAPI возвращает ErrInvoiceNotFound, если счёт для заказа ещё не выставлен.
type InvoiceAPI interface {
	GetInvoiceURL(ctx context.Context, token string, orderCode string) (string, error)
}
