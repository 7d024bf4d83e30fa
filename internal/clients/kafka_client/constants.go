package kafka_client

import "time"

const (
	KAFKA_TOPIC_RAW_BATCHES       = "raw-batches"       // scraper export envelopes, one per platform/category run
	KAFKA_TOPIC_CANONICAL_RECORDS = "canonical-records" // normalized records ready for storage
)

const (
	BATCH_SIZE    = 25 // matches the DynamoDB batch write limit
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
