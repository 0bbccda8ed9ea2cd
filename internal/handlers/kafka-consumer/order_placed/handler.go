package order_placed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"service/pkg/logger"
)

const (
	resultOK  = "ok"
	resultBad = "bad_message"
)

type Handler struct {
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
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
				// Messages() закрыт — выходим
				h.log.Info("order.placed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.placed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event placedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.placed handler received bad message")
		ConsumedTotal.WithLabelValues(resultBad).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	if err := ctx.Err(); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Warn("order.placed handler context cancelled, message will be reprocessed")
		return true
	}

	h.log.With(
		logger.NewField("order", event.ID),
		logger.NewField("product", event.ProductID),
		logger.NewField("quantity", event.Quantity),
		logger.NewField("customer", event.CustomerName),
		logger.NewField("amount", event.TotalAmount.String()),
		logger.NewField("offset", message.Offset),
	).Info("order.placed: received")

	ConsumedTotal.WithLabelValues(resultOK).Inc()
	sess.MarkMessage(message, "")
	return false
}
