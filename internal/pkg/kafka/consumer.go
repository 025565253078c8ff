package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"console/internal/pkg/config"
	"console/pkg/logger"
	retrierconfig "console/pkg/retrier"
	"console/pkg/retrier/backoff_adapter"
	"github.com/IBM/sarama"
)

const (
	clientID = "order-console"

	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()
	cfg.ClientID = clientID

	// Version из строки
	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}
	cfg.Consumer.Return.Errors = false

	return cfg, nil
}

// NewConsumer создаёт consumer group. initialOffset определяет, с какого места
// читает группа без сохранённых оффсетов (sarama.OffsetNewest / sarama.OffsetOldest).
func NewConsumer(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Kafka,
	groupID string,
	topics []string,
	initialOffset int64,
	handler sarama.ConsumerGroupHandler,
) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		initialOffset,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", groupID),
		logger.NewField("topics", topics),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig, topics...)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, groupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start читает топики, пока не отменён ctx или не закрыта группа.
// Consume возвращается после каждой ребалансировки, поэтому вызывается в цикле.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer started")
	defer c.log.Info("kafka consumer stopped")

	for ctx.Err() == nil {
		err := c.client.Consume(ctx, c.topics, c.handler)
		switch {
		case err == nil:
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		default:
			return fmt.Errorf("consume %v: %w", c.topics, err)
		}
	}

	return ctx.Err()
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// pingKafka ждёт доступности брокеров и проверяет, что нужные топики существуют.
// Пустой topics проверяет только подключение.
func pingKafka(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config, topics ...string) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(context.Context) error {
		attempt++

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			log.Warn("kafka is not reachable yet",
				logger.NewField("attempt", attempt),
				logger.NewField("error", err),
			)
			return err
		}
		defer func() {
			if closeErr := client.Close(); closeErr != nil {
				log.Warn("close kafka ping client", logger.NewField("error", closeErr))
			}
		}()

		return checkTopics(client, topics)
	})
	if err != nil {
		return fmt.Errorf("kafka unavailable after %d attempts: %w", attempt, err)
	}

	log.Info("kafka connection established", logger.NewField("attempts", attempt))
	return nil
}

func checkTopics(client sarama.Client, topics []string) error {
	if len(topics) == 0 {
		_, err := client.Topics()
		return err
	}

	known, err := client.Topics()
	if err != nil {
		return err
	}
	for _, topic := range topics {
		if !slices.Contains(known, topic) {
			return fmt.Errorf("topic %q: %w", topic, sarama.ErrUnknownTopicOrPartition)
		}
	}
	return nil
}
