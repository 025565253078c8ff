package orders_resync

import (
	"context"
	"errors"
	"time"

	"console/internal/service"
	"console/internal/service/ordersync"
	"console/pkg/logger"
)

// OrdersResync периодически перезагружает список заказов на случай пропущенных событий.
type OrdersResync struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewOrdersResync(log handlerLogger, service Service, interval time.Duration) *OrdersResync {
	return &OrdersResync{
		log:      log.With(logger.NewField("task", "orders resync")),
		service:  service,
		interval: interval,
	}
}

func (o *OrdersResync) TTL() time.Duration {
	return o.interval
}

func (o *OrdersResync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	err := o.service.Resync(ctxWithTimeout)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrAuth):
		// без сессии ресинк невозможен, ждём следующего тика
		o.log.Warn("orders resync skipped: no active session")
		return nil
	case errors.Is(err, ordersync.ErrRetired):
		return nil
	default:
		return err
	}
}

func (o *OrdersResync) Info() string {
	return "orders resync"
}
