// Package kafka publishes delivered onecall events to a Kafka topic
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IBM/sarama"

	"github.com/harshitrajsinha/onecall-weather-go/internal/events"
)

var errProducerNotInitialised = errors.New("kafka publisher: producer not initialised")

// ErrProducerNotInitialised exposes the sentinel error for callers and tests.
func ErrProducerNotInitialised() error {
	return errProducerNotInitialised
}

// ProducerConfig returns the sarama configuration used for synchronous publishing
func ProducerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.ClientID = "onecall-weather"
	cfg.Producer.Return.Successes = true
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = false
	return cfg
}

// Publisher writes events to Kafka, keyed by event ID
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher dials the brokers and returns a ready Publisher
func NewPublisher(brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka publisher: at least one broker is required")
	}

	producer, err := sarama.NewSyncProducer(brokers, ProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("kafka publisher: create producer: %w", err)
	}
	return NewPublisherWithProducer(producer, topic), nil
}

// NewPublisherWithProducer wraps an existing producer
func NewPublisherWithProducer(producer sarama.SyncProducer, topic string) *Publisher {
	if producer == nil {
		return nil
	}
	return &Publisher{producer: producer, topic: topic}
}

// Deliver publishes event synchronously
func (p *Publisher) Deliver(_ context.Context, event events.Event) error {
	if p == nil || p.producer == nil {
		return errProducerNotInitialised
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("kafka publisher: marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ID),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte("content-type"), Value: []byte("application/json")},
			{Key: []byte("event-name"), Value: []byte(event.Name)},
		},
	}

	if _, _, err := p.producer.SendMessage(msg); err != nil {
		return fmt.Errorf("kafka publisher: publish event: %w", err)
	}
	return nil
}

// Close shuts down the underlying producer
func (p *Publisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
