package source

import (
	"encoding/json"
	"fmt"
	"time"

	ck "github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"dcs/internal/model"
)

// KafkaSource drains a bounded batch of raw orders from a topic. The batch
// ends after maxRecords messages or when no message arrives within idle.
type KafkaSource struct {
	bootstrap  string
	groupID    string
	topic      string
	maxRecords int
	idle       time.Duration
}

func NewKafkaSource(bootstrap string, groupID string, topic string, maxRecords int, idle time.Duration) *KafkaSource {
	if maxRecords <= 0 {
		maxRecords = 10000
	}
	if idle <= 0 {
		idle = 5 * time.Second
	}
	return &KafkaSource{
		bootstrap:  bootstrap,
		groupID:    groupID,
		topic:      topic,
		maxRecords: maxRecords,
		idle:       idle,
	}
}

func (s *KafkaSource) ReadBatch() ([]model.Order, error) {
	c, err := ck.NewConsumer(&ck.ConfigMap{
		"bootstrap.servers":  s.bootstrap,
		"group.id":           s.groupID,
		"enable.auto.commit": false,
		"isolation.level":    "read_committed",
		"auto.offset.reset":  "earliest",
	})
	if err != nil {
		return nil, fmt.Errorf("consumer: %w", err)
	}
	defer c.Close()

	if err := c.SubscribeTopics([]string{s.topic}, nil); err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	var orders []model.Order
	for len(orders) < s.maxRecords {
		msg, err := c.ReadMessage(s.idle)
		if err != nil {
			// idle timeout closes the batch; anything else is fatal
			if kerr, ok := err.(ck.Error); ok && kerr.Code() == ck.ErrTimedOut {
				break
			}
			return nil, fmt.Errorf("read message: %w", err)
		}
		var o model.Order
		if err := json.Unmarshal(msg.Value, &o); err != nil {
			return nil, fmt.Errorf("unmarshal order at %s: %w", msg.TopicPartition, err)
		}
		if err := o.Validate(); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if _, err := c.Commit(); err != nil {
		// an empty batch has no offsets to commit
		if kerr, ok := err.(ck.Error); !ok || kerr.Code() != ck.ErrNoOffset {
			return nil, fmt.Errorf("commit offsets: %w", err)
		}
	}
	return orders, nil
}
