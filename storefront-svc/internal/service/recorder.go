package service

import (
	"context"
	"encoding/json"
	"errors"

	"storefront/storefront-svc/internal/domain"
)

// OrderRecorder drains the orders topic into a sink, normally the archive.
type OrderRecorder struct {
	Reader MessageReader
	Sink   OrderSink
}

func NewOrderRecorder(reader MessageReader, sink OrderSink) *OrderRecorder {
	return &OrderRecorder{Reader: reader, Sink: sink}
}

// Start blocks until ctx is cancelled.
func (r *OrderRecorder) Start(ctx context.Context) {
	logger.Info().Msg("Starting order recorder...")
	for {
		message, err := r.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				logger.Info().Msg("order recorder stopped")
				return
			}
			logger.Error().Err(err).Msg("Error reading message")
			continue
		}

		var msg domain.OrderMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			logger.Error().Err(err).Msg("Error unmarshaling message")
			continue
		}

		r.ProcessOrder(ctx, msg)
	}
}

func (r *OrderRecorder) ProcessOrder(ctx context.Context, msg domain.OrderMessage) {
	if msg.Type != domain.OrderSubmittedEvent {
		return
	}

	if err := r.Sink.Record(ctx, msg.Order); err != nil {
		logger.Error().Err(err).Msgf("Error recording order %s", msg.Order.ID)
		return
	}

	logger.Info().Msgf("Successfully recorded order %s", msg.Order.ID)
}
