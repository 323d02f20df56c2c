package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"

	"dcs/internal/aggregate"
)

// KafkaSink publishes rows to a Kafka topic keyed by the row's composite key,
// so a compacted topic keeps only the latest aggregate per (date, customer).
// Pure-Go client (segmentio/kafka-go).
type KafkaSink struct {
	writer kafkaMessageWriter
}

// kafkaMessageWriter abstracts kafka.Writer for testability.
type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// NewKafkaSink creates a Kafka sink.
// bootstrap can be a comma-separated list of host:port.
func NewKafkaSink(bootstrap string, topic string) *KafkaSink {
	addrs := strings.Split(bootstrap, ",")
	var brokers []string
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		if a != "" {
			brokers = append(brokers, a)
		}
	}
	return &KafkaSink{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}}
}

func (k *KafkaSink) Write(rows []aggregate.Row) error {
	if len(rows) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(rows))
	for _, r := range rows {
		b, err := json.Marshal(&r)
		if err != nil {
			return fmt.Errorf("marshal row %s: %w", r.Key(), err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(r.Key()), Value: b})
	}
	return k.writer.WriteMessages(context.Background(), msgs...)
}

// NewKafkaSinkWith is only for tests to inject a fake writer.
func NewKafkaSinkWith(w kafkaMessageWriter) *KafkaSink {
	return &KafkaSink{writer: w}
}
