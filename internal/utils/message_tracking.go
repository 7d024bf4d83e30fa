package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Buffered records outlive the Kafka message they arrived in, so the
// originating message is tracked by record URL and committed only once
// the record has been persisted.
var messageMap sync.Map

func TrackMessage(url string, msg *kafka.Message) {
	messageMap.Store(url, msg)
}

func GetMessageForRecord(url string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(url)
	if !ok {
		return nil, false
	}
	messageMap.Delete(url)
	return msg.(*kafka.Message), true
}
