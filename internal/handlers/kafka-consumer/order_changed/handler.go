package order_changed

import (
	"context"
	"time"

	"console/internal/service/ordersync"
	"console/pkg/logger"
	"github.com/IBM/sarama"
)

// Handler передаёт события об изменении заказов в ordersync.EventHandler.
type Handler struct {
	onEvent                  ordersync.EventHandler
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, onEvent ordersync.EventHandler, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order.changed"),
	)

	return &Handler{
		onEvent:                  onEvent,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт, выходим
				h.log.Info("order.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или снятие подписки), выходим
			h.log.Info("order.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если сессия завершилась во время обработки и нужно выйти из ConsumeClaim.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := decodeEvent(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("type", event.Type.String()),
		logger.NewField("order", event.RecordID),
		logger.NewField("offset", message.Offset),
	).Info("order.changed processing")

	// Ошибки сверки логирует сам контроллер, сообщение не переигрывается.
	h.onEvent(ctx, event)

	if sess.Context().Err() != nil {
		return true
	}

	sess.MarkMessage(message, "")
	return false
}
