package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"service/internal/pkg/config"
	"service/pkg/logger"
)

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// WaitForAll + идемпотентность: одно событие на один успешный create
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Producer.Retry.Max = 3
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Return.Successes = true

	return cfg, nil
}

// NewSyncProducer создает синхронный producer и проверяет соединение
// тем же ping-ом с бэкоффом, что и consumer.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return producer, nil
}
