//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordersync_test
package ordersync

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

// OrderAPI возвращает service.ErrAuth при 401/403, ErrOrderNotFound при 404
// и service.ErrFetch при остальных сбоях.
type OrderAPI interface {
	ListOrders(ctx context.Context, token string, filter entities.OrderFilter) ([]entities.Order, error)
	GetOrder(ctx context.Context, token string, id string) (*entities.Order, error)
}

type AuthProvider interface {
	// AccessToken возвращает false, если сессии нет или срок её действия истёк.
	AccessToken() (string, bool)
}

type EventHandler func(ctx context.Context, event entities.ChangeEvent)

type EventChannel interface {
	Subscribe(ctx context.Context, handler EventHandler) (Subscription, error)
}

type Subscription interface {
	Close() error
}

type Notifier interface {
	CanNotify() bool
	Notify(ctx context.Context, message entities.NotificationMessage) error
}
