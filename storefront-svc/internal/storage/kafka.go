package storage

import (
	"context"
	"encoding/json"
	"time"

	"storefront/storefront-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaPublisher is an order sink that hands orders to the recorder through
// the orders topic.
type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaPublisher(writer MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Record(ctx context.Context, order domain.OrderConfirmation) error {
	payload, err := json.Marshal(domain.OrderMessage{
		Type:      domain.OrderSubmittedEvent,
		Order:     order,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.ID.String()),
		Value: payload,
	})
}
