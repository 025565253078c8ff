//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_resync_test
package orders_resync

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
	Resync(ctx context.Context) error
}
