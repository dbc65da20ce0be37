package events

import (
	"TMS_LoadBalancer_Service/internal/load-balancer/model"
	"TMS_LoadBalancer_Service/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// KafkaPublisher forwards health transition events to a kafka topic, keyed by
// server id so per-server ordering is preserved across partitions. Publishing
// happens on its own goroutine per event; a broker outage must never stall
// the prober.
type KafkaPublisher struct {
	writer infra.KafkaWriter
	logger *zap.Logger
}

func NewKafkaPublisher(writer infra.KafkaWriter, logger *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: writer,
		logger: logger,
	}
}

func (p *KafkaPublisher) OnTransition(event model.HealthTransitionEvent) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("failed to marshal health transition event",
				zap.Error(fmt.Errorf("KafkaPublisher.OnTransition: %w", err)),
				zap.String("server_id", event.ServerID))
			return
		}
		err = p.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.ServerID),
			Value: b,
		})
		if err != nil {
			p.logger.Error("failed to publish health transition event",
				zap.Error(fmt.Errorf("KafkaPublisher.OnTransition: %w", err)),
				zap.String("server_id", event.ServerID))
		}
	}()
}
