package consumers

import (
	"context"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"

	"github.com/trendsift/trendsift/internal/clients"
	"github.com/trendsift/trendsift/internal/clients/kafka_client"
	"github.com/trendsift/trendsift/internal/models"
	"github.com/trendsift/trendsift/internal/normalize"
	"github.com/trendsift/trendsift/internal/utils"
)

// StartRawBatchConsumer turns raw scraper export envelopes into
// canonical records and republishes them for storage. Records whose
// URL was already handled in a previous run are dropped here; the core
// only dedups within one batch.
func StartRawBatchConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[RawBatchConsumer] Listening for messages...")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[RawBatchConsumer] Stopping consumer...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var batch models.RawBatch
			if err := utils.DeserializeFromJSON(msg.Value, &batch); err != nil {
				// poison message, skip past it
				commitOrWarn(committer, msg)
				continue
			}
			if batch.BatchID == "" {
				batch.BatchID = uuid.NewString()
			}
			if batch.Category == "" {
				batch.Category = models.DefaultCategory
			}

			records, err := normalize.NormalizeBatch(batch.Platform, batch.Category, batch.Items)
			if err != nil {
				slog.Error("[RawBatchConsumer] Batch failed to normalize",
					slog.String("batch_id", batch.BatchID),
					slog.String("platform", string(batch.Platform)),
					slog.String("error", err.Error()))
				commitOrWarn(committer, msg)
				continue
			}

			fresh := dropProcessed(ctx, records)
			slog.Info("[RawBatchConsumer] Normalized batch",
				slog.String("batch_id", batch.BatchID),
				slog.String("platform", string(batch.Platform)),
				slog.Int("in", len(batch.Items)),
				slog.Int("out", len(records)),
				slog.Int("fresh", len(fresh)))

			if len(fresh) == 0 {
				commitOrWarn(committer, msg)
				continue
			}

			if err := kafka_client.PublishToKafka(ctx, kafka_client.KAFKA_TOPIC_CANONICAL_RECORDS, batch.BatchID, fresh); err != nil {
				// leave the offset uncommitted so the batch is redelivered
				slog.Warn("[RawBatchConsumer] Failed to publish canonical records",
					slog.String("batch_id", batch.BatchID),
					slog.String("error", err.Error()))
				continue
			}

			markProcessed(ctx, fresh)
			commitOrWarn(committer, msg)
		}
	}
}

func dropProcessed(ctx context.Context, records []models.CanonicalRecord) []models.CanonicalRecord {
	vk := clients.GetValkeyClient()
	fresh := make([]models.CanonicalRecord, 0, len(records))
	for _, rec := range records {
		if rec.URL != "" && vk.IsURLProcessed(ctx, string(rec.Platform), rec.URL) {
			continue
		}
		fresh = append(fresh, rec)
	}
	return fresh
}

func markProcessed(ctx context.Context, records []models.CanonicalRecord) {
	vk := clients.GetValkeyClient()
	for _, rec := range records {
		if rec.URL == "" {
			continue
		}
		if err := vk.MarkProcessed(ctx, string(rec.Platform), rec.URL); err != nil {
			slog.Warn("[RawBatchConsumer] Error marking record as processed",
				slog.String("url", rec.URL),
				slog.String("error", err.Error()))
		}
	}
}

func commitOrWarn(committer *kafka_client.KafkaCommitHandler, msg *kafka.Message) {
	if err := committer.Commit(msg); err != nil {
		slog.Warn("[RawBatchConsumer] Failed to commit offset",
			slog.String("error", err.Error()))
	}
}
