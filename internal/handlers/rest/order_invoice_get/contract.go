//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_invoice_get_test
package order_invoice_get

import (
	"context"

	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	InvoiceURL(ctx context.Context, orderCode string) (string, error)
}
