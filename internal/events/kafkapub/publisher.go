// Package kafkapub publishes settlement events to kafka.
package kafkapub

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-petr/gold-vault/internal/domain"
	"github.com/segmentio/kafka-go"
)

// SettlementCompletedEvent is the payload emitted after a settlement commits.
type SettlementCompletedEvent struct {
	RequestID      int64     `json:"request_id"`
	AccountID      string    `json:"account_id"`
	Kind           string    `json:"kind"`
	AmountCurrency string    `json:"amount_currency"`
	Units          string    `json:"units"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// Publisher writes settlement events to a kafka topic.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns a Publisher for the given broker and topic.
func NewPublisher(brokerAddress, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddress),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// SettlementCompleted emits the completed settlement, keyed by account so
// consumers see one account's settlements in order.
func (p *Publisher) SettlementCompleted(ctx context.Context, request domain.SettlementRequest) error {
	data, err := json.Marshal(SettlementCompletedEvent{
		RequestID:      request.ID,
		AccountID:      request.AccountID,
		Kind:           request.Kind,
		AmountCurrency: request.AmountCurrency,
		Units:          request.Units,
		OccurredAt:     time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(request.AccountID),
		Value: data,
	})
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
