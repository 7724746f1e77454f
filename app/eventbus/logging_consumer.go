package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Black-And-White-Club/fantasy-league/app/shared/observability/attr"
	"github.com/ThreeDotsLabs/watermill/message"
)

// SubscribeAuditLog logs every message on the given topics.
func SubscribeAuditLog(ctx context.Context, bus EventBus, logger *slog.Logger, topics ...string) error {
	for _, topic := range topics {
		topic := topic
		err := bus.Subscribe(ctx, topic, func(ctx context.Context, msg *message.Message) error {
			logger.InfoContext(ctx, "Domain event",
				attr.ExtractCorrelationID(ctx),
				attr.String("topic", topic),
				attr.String("message_id", msg.UUID),
				attr.String("payload", string(msg.Payload)),
			)
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to subscribe audit log to %s: %w", topic, err)
		}
	}
	return nil
}
