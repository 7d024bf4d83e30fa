package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/trendsift/trendsift/config"
	"github.com/trendsift/trendsift/internal/clients"
	"github.com/trendsift/trendsift/internal/clients/kafka_client"
	"github.com/trendsift/trendsift/internal/consumers"
	"github.com/trendsift/trendsift/internal/db"
	"github.com/trendsift/trendsift/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_RAW_BATCHES, consumers.StartRawBatchConsumer)
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_CANONICAL_RECORDS, consumers.StartRecordsConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
