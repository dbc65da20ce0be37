package infra

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// KafkaWriter covers the part of *kafka.Writer the publishers use, kept as
// an interface so tests can substitute it.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}
