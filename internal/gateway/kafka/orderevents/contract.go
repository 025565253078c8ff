//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderevents_test
package orderevents

import (
	"context"

	"github.com/IBM/sarama"
)

type Consumer interface {
	Start(ctx context.Context) error
	Close() error
}

// ConsumerFactory создаёт consumer group под отдельную подписку.
type ConsumerFactory interface {
	NewConsumer(ctx context.Context, groupID string, handler sarama.ConsumerGroupHandler) (Consumer, error)
}
