package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"nomaddesk/internal/infra/email"
	"nomaddesk/internal/infra/stream"
	"nomaddesk/internal/pkg/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := stream.NewConsumer(cfg.Kafka)
	defer consumer.Close()

	sender := email.NewSender()

	go func() {
		slog.Info("notification worker started",
			"topic", cfg.Kafka.NotificationTopic,
			"group", cfg.Kafka.ConsumerGroup)
		if err := consumer.Consume(ctx, sender.Send); err != nil {
			slog.Error("consumer stopped", "error", err)
			cancel()
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sig:
		slog.Info("shutdown signal received")
	case <-ctx.Done():
	}

	cancel()
	slog.Info("notification worker stopped")
}
