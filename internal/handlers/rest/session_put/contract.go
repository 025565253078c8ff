//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_put_test
package session_put

import (
	"context"
	"time"

	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Set(token string, expiresAt time.Time) error
}

// OrdersLoader перезагружает список после входа.
type OrdersLoader interface {
	Resync(ctx context.Context) error
}
