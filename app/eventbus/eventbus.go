package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// correlationMetadataKey carries the request correlation id on every message.
const correlationMetadataKey = "correlation_id"

// ErrClosed is returned when publishing on a closed bus.
var ErrClosed = errors.New("event bus is closed")

// EventBus publishes domain events and fans them out to in-process subscribers.
type EventBus interface {
	Publish(ctx context.Context, topic string, msg *message.Message) error
	Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, msg *message.Message) error) error
	Close() error
}

// eventBus implements EventBus over a watermill gochannel pub/sub.
type eventBus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// NewEventBus creates an in-process event bus.
func NewEventBus(logger *slog.Logger) EventBus {
	if logger == nil {
		logger = slog.Default()
	}
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewSlogLogger(logger),
	)
	return &eventBus{pubsub: pubsub, logger: logger}
}

// NewMessage marshals payload to JSON and stamps the correlation id from ctx.
func NewMessage(ctx context.Context, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), data)
	if id := attr.CorrelationID(ctx); id != "" {
		msg.Metadata.Set(correlationMetadataKey, id)
	}
	return msg, nil
}

func (eb *eventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return ErrClosed
	}

	if msg.UUID == "" {
		msg.UUID = watermill.NewUUID()
	}
	msg.SetContext(ctx)

	eb.logger.DebugContext(ctx, "Publishing message",
		attr.ExtractCorrelationID(ctx),
		attr.String("topic", topic),
		attr.String("message_id", msg.UUID),
	)

	if err := eb.pubsub.Publish(topic, msg); err != nil {
		eb.logger.ErrorContext(ctx, "Failed to publish message",
			attr.String("topic", topic),
			attr.Error(err),
		)
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}
	return nil
}

// Subscribe starts a goroutine delivering messages on topic to handler until
// ctx is cancelled or the bus is closed. Handler errors nack the message.
func (eb *eventBus) Subscribe(ctx context.Context, topic string, handler func(ctx context.Context, msg *message.Message) error) error {
	messages, err := eb.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}

	eb.logger.InfoContext(ctx, "Subscription started", attr.String("topic", topic))

	go func() {
		for msg := range messages {
			msgCtx := ctx
			if id := msg.Metadata.Get(correlationMetadataKey); id != "" {
				msgCtx = attr.WithCorrelationID(ctx, id)
			}
			if err := handler(msgCtx, msg); err != nil {
				eb.logger.ErrorContext(msgCtx, "Handler error",
					attr.String("topic", topic),
					attr.String("message_id", msg.UUID),
					attr.Error(err),
				)
				msg.Nack()
				continue
			}
			msg.Ack()
		}
	}()

	return nil
}

func (eb *eventBus) Close() error {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	if eb.closed {
		return nil
	}
	eb.closed = true
	if err := eb.pubsub.Close(); err != nil {
		eb.logger.Error("Error closing gochannel pub/sub", attr.Error(err))
		return err
	}
	return nil
}
