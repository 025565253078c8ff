//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_refresh_post_test
package orders_refresh_post

import (
	"context"

	"console/internal/entities"
	"console/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ManualRefresh(ctx context.Context, filter entities.OrderFilter) error
	Orders() []entities.Order
}
