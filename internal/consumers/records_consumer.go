package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/trendsift/trendsift/internal/clients/kafka_client"
	"github.com/trendsift/trendsift/internal/db"
	"github.com/trendsift/trendsift/internal/models"
	"github.com/trendsift/trendsift/internal/sentiment"
	"github.com/trendsift/trendsift/internal/utils"
)

var scoredBuffer = utils.NewBatchBuffer[models.ScoredRecord]()

// StartRecordsConsumer scores canonical records and writes them to
// DynamoDB in buffered batches. Offsets are committed only after the
// record's batch has been stored.
func StartRecordsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	slog.Info("[RecordsConsumer] Listening for messages...")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[RecordsConsumer] Stopping consumer...")
			flushScored(ctx, committer)
			return
		case <-ticker.C:
			go flushScored(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var records []models.CanonicalRecord
			if err := utils.DeserializeFromJSON(msg.Value, &records); err != nil {
				continue
			}

			for _, rec := range records {
				score, label := sentiment.ScoreText(rec.Text)
				utils.TrackMessage(rec.URL, msg)
				scoredBuffer.Add(models.ScoredRecord{
					CanonicalRecord: rec,
					SentimentScore:  score,
					SentimentLabel:  label,
				})
			}

			if scoredBuffer.Size() >= utils.BATCH_SIZE {
				go flushScored(ctx, committer)
			}
		}
	}
}

func flushScored(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := scoredBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	var err error
	for attempt := 1; attempt <= kafka_client.MAX_RETRIES; attempt++ {
		if err = db.StoreScoredRecords(ctx, batch); err == nil {
			break
		}
		slog.Warn("[RecordsConsumer] Failed to store scored records, retrying...",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))
		time.Sleep(kafka_client.RETRY_DELAY)
	}
	if err != nil {
		slog.Error("[RecordsConsumer] Dropping batch after repeated store failures",
			slog.Int("records", len(batch)),
			slog.String("error", err.Error()))
		return
	}

	slog.Info("[RecordsConsumer] Stored scored records", slog.Int("records", len(batch)))

	for _, rec := range batch {
		msg, found := utils.GetMessageForRecord(rec.URL)
		if !found {
			continue
		}
		if err := committer.Commit(msg); err != nil {
			slog.Warn("[RecordsConsumer] Failed to commit offset",
				slog.String("url", rec.URL),
				slog.String("error", err.Error()))
		}
	}
}
