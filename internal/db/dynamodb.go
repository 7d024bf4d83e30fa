package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/trendsift/trendsift/internal/clients"
	"github.com/trendsift/trendsift/internal/models"
)

const CANONICAL_POSTS_TABLE_NAME = "CanonicalPosts"

// Records feed trend ranking; stale ones age out on their own.
const RECORD_TTL = 7 * 24 * time.Hour

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreScoredRecords batch-writes canonical records (with their
// sentiment enrichment) keyed by url, in DynamoDB-sized chunks,
// retrying unprocessed items with doubling backoff.
func StoreScoredRecords(ctx context.Context, records []models.ScoredRecord) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	expiresAt := time.Now().Add(RECORD_TTL).Unix()

	const maxBatchSize = 25
	for i := 0; i < len(records); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(records) {
			end = len(records)
		}

		writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
		for _, record := range records[i:end] {
			item, err := attributevalue.MarshalMap(record)
			if err != nil {
				slog.Error("[DynamoDB] Failed to marshal record, skipping",
					slog.String("url", record.URL),
					slog.String("error", err.Error()))
				continue
			}
			item["expires_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expiresAt)}

			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}
		if len(writeRequests) == 0 {
			continue
		}

		out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				CANONICAL_POSTS_TABLE_NAME: writeRequests,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write records: %w", err)
		}

		retryCount := 0
		backoff := 500 * time.Millisecond
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoff)
			backoff *= 2

			slog.Warn("[DynamoDB] Retrying unprocessed items...",
				slog.Int("retry_attempt", retryCount+1),
				slog.Int("remaining_items", len(out.UnprocessedItems[CANONICAL_POSTS_TABLE_NAME])))

			out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
			}
			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			slog.Error("[DynamoDB] Some items were not written even after retries",
				slog.Int("remaining_items", len(out.UnprocessedItems[CANONICAL_POSTS_TABLE_NAME])))
		}
	}

	slog.Info("[DynamoDB] Successfully stored records",
		slog.Int("count", len(records)))
	return nil
}
