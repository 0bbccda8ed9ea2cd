package order_placed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

// PublishOrderPlaced отправляет событие order.placed синхронно.
// Ключ сообщения - id заказа, чтобы события одного заказа шли в одну партицию.
func (g *Gateway) PublishOrderPlaced(ctx context.Context, orderEntity *entities.Order) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway order_placed: %w", err)
	}

	event := toEvent(orderEntity)
	if event == nil {
		return fmt.Errorf("gateway order_placed: nil order")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway order_placed, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.ID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(msg)

	result := resultOK
	if err != nil {
		result = resultError
	}
	// Метрики Prometheus
	GatewayPublishDuration.WithLabelValues(g.topic, result).Observe(time.Since(start).Seconds())
	GatewayPublishedTotal.WithLabelValues(g.topic, result).Inc()

	if err != nil {
		return fmt.Errorf("gateway order_placed, publish order %d: %w", event.ID, err)
	}

	return nil
}
