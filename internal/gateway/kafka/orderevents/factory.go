package orderevents

import (
	"context"

	"console/internal/pkg/config"
	"console/internal/pkg/kafka"
	"console/pkg/logger"
	"github.com/IBM/sarama"
)

// SaramaFactory создаёт consumer group на топик событий заказов.
type SaramaFactory struct {
	log logger.Logger
	cfg *config.Kafka
}

func NewSaramaFactory(log logger.Logger, cfg *config.Kafka) *SaramaFactory {
	return &SaramaFactory{
		log: log,
		cfg: cfg,
	}
}

func (f *SaramaFactory) NewConsumer(ctx context.Context, groupID string, handler sarama.ConsumerGroupHandler) (Consumer, error) {
	// Подписка одноразовая: читаем только события, пришедшие после её открытия.
	c, err := kafka.NewConsumer(ctx, f.log, f.cfg, groupID, []string{f.cfg.OrderEventsTopic}, sarama.OffsetNewest, handler)
	if err != nil {
		return nil, err
	}
	return c, nil
}
