package kafka

import (
	"context"
	"time"

	kafka "github.com/segmentio/kafka-go"
)

type Publisher struct {
	writer messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Publisher{writer: w}
}

// Publish writes one payload. Messages with the same key land on the same
// partition.
func (p *Publisher) Publish(ctx context.Context, key string, payload []byte) error {
	msg := kafka.Message{Value: payload}
	if key != "" {
		msg.Key = []byte(key)
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
