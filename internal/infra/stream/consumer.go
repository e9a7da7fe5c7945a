package stream

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"nomaddesk/internal/pkg/config"
)

type Consumer struct {
	reader *kafka.Reader
}

func NewConsumer(cfg config.KafkaConfig) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           cfg.Brokers,
			GroupID:           cfg.ConsumerGroup,
			Topic:             cfg.NotificationTopic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks reading notification messages until ctx is cancelled.
// Malformed payloads are logged and skipped so one bad message does not
// wedge the group.
func (c *Consumer) Consume(ctx context.Context, handler func(ctx context.Context, msg NotificationMessage) error) error {
	for {
		raw, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var msg NotificationMessage
		if err := json.Unmarshal(raw.Value, &msg); err != nil {
			slog.Warn("skipping malformed notification message",
				"partition", raw.Partition,
				"offset", raw.Offset,
				"error", err.Error())
			continue
		}

		if err := handler(ctx, msg); err != nil {
			slog.Error("notification handler failed",
				"notification_id", msg.NotificationID,
				"recipient_id", msg.RecipientID,
				"error", err.Error())
		}
	}
}
