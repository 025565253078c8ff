//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"console/internal/entities"
)

type Repository interface {
	// Create возвращает ErrAlreadyNotified, если по коду заказа уведомление уже было.
	Create(ctx context.Context, notification entities.Notification) (int64, error)
	List(ctx context.Context, limit uint64) ([]entities.Notification, error)
}

type Publisher interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
