package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fjod/go_pos/internal/domain"
	"github.com/segmentio/kafka-go"
)

const (
	TopicStockAlerts = "pos-stock-alerts"
	TopicSales       = "pos-sales"
)

// KafkaPublisher ships engine events to the back office over kafka. The topic
// is chosen per message so a single writer serves both event kinds.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) PublishLowStock(ctx context.Context, alert LowStockAlert) error {
	value, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal low stock alert: %w", err)
	}

	msg := kafka.Message{
		Topic: TopicStockAlerts,
		Key:   []byte(strconv.FormatInt(alert.ProductID, 10)),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish low stock alert: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) PublishSaleCompleted(ctx context.Context, outcome *domain.PaymentOutcome) error {
	value, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal sale payload: %w", err)
	}

	msg := kafka.Message{
		Topic: TopicSales,
		Key:   []byte(outcome.OrderID),
		Value: value,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish sale: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
