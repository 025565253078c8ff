package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"console/internal/entities"
	"github.com/IBM/sarama"
)

var ErrNoProducer = errors.New("notifications producer is not configured")

type message struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	OrderCode string    `json:"order_code"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher отправляет уведомления в топик, откуда их забирает доставка на устройства.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

func New(producer sarama.SyncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) Publish(ctx context.Context, n entities.Notification) error {
	if p.producer == nil {
		return ErrNoProducer
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(message{
		ID:        n.ID,
		OrderID:   n.OrderID,
		OrderCode: n.OrderCode,
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(n.OrderCode),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/json")},
		},
	})
	if err != nil {
		return fmt.Errorf("send notification to %s: %w", p.topic, err)
	}

	return nil
}
