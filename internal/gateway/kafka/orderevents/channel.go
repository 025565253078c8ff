package orderevents

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"console/internal/handlers/kafka-consumer/order_changed"
	"console/internal/service/ordersync"
	"console/pkg/logger"
	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Channel - канал событий об изменении заказов поверх Kafka.
// Каждая подписка получает собственную consumer group и читает только новые сообщения.
type Channel struct {
	log            logger.Logger
	factory        ConsumerFactory
	groupPrefix    string
	processTimeout time.Duration
}

func New(log logger.Logger, factory ConsumerFactory, groupPrefix string, processTimeout time.Duration) *Channel {
	return &Channel{
		log:            log,
		factory:        factory,
		groupPrefix:    groupPrefix,
		processTimeout: processTimeout,
	}
}

func (c *Channel) Subscribe(ctx context.Context, handler ordersync.EventHandler) (ordersync.Subscription, error) {
	groupID := fmt.Sprintf("%s-%s", c.groupPrefix, uuid.NewString())
	subLog := c.log.With(logger.NewField("group", groupID))

	cons, err := c.factory.NewConsumer(ctx, groupID, order_changed.New(subLog, handler, c.processTimeout))
	if err != nil {
		return nil, fmt.Errorf("order events consumer: %w", err)
	}

	// Подписка живёт до Close, а не до отмены ctx вызова Subscribe.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	sub := &subscription{
		log:      subLog,
		consumer: cons,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go sub.run(runCtx)

	subLog.Info("subscribed to order changes")
	return sub, nil
}

type subscription struct {
	log      logger.Logger
	consumer Consumer
	cancel   context.CancelFunc
	done     chan struct{}

	closeOnce sync.Once
	closeErr  error
}

func (s *subscription) run(ctx context.Context) {
	defer close(s.done)

	err := s.consumer.Start(ctx)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, sarama.ErrClosedConsumerGroup) {
		s.log.Error("order changes consumer stopped",
			logger.NewField("error", err),
		)
	}
}

// Close останавливает чтение и дожидается выхода из consumer.
func (s *subscription) Close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		s.closeErr = s.consumer.Close()
		<-s.done
		s.log.Info("unsubscribed from order changes")
	})
	return s.closeErr
}
