// Package events defines the notifications exchanged between the adapter and its host
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// NameOneCallGet asks the adapter to fetch One Call data
	NameOneCallGet = "OPENWEATHER_ONECALL_GET"
	// NameOneCallData carries the provider payload back to the host
	NameOneCallData = "OPENWEATHER_ONECALL_DATA"
)

// Event is a single notification. Payload is forwarded unmodified.
type Event struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Payload   any       `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}

// New stamps a new event with a random ID and the current UTC time
func New(name string, payload any) Event {
	return Event{
		ID:        uuid.NewString(),
		Name:      name,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

// Sink receives delivered events
type Sink interface {
	Deliver(ctx context.Context, event Event) error
}

// SinkFunc adapts a plain function to Sink
type SinkFunc func(ctx context.Context, event Event) error

// Deliver calls f
func (f SinkFunc) Deliver(ctx context.Context, event Event) error {
	return f(ctx, event)
}

type namedSink struct {
	name string
	sink Sink
}

// Hub fans every notified event out to the registered sinks in registration
// order. A failing sink is logged and does not stop delivery to the others.
type Hub struct {
	mu     sync.RWMutex
	sinks  []namedSink
	logger zerolog.Logger
}

// NewHub is constructor for Hub
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{logger: logger}
}

// Register adds a sink under name
func (h *Hub) Register(name string, sink Sink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sinks = append(h.sinks, namedSink{name: name, sink: sink})
}

// Notify delivers event to every sink
func (h *Hub) Notify(ctx context.Context, event Event) {
	h.mu.RLock()
	sinks := make([]namedSink, len(h.sinks))
	copy(sinks, h.sinks)
	h.mu.RUnlock()

	for _, s := range sinks {
		if err := s.sink.Deliver(ctx, event); err != nil {
			h.logger.Error().
				Err(err).
				Str("sink", s.name).
				Str("event_id", event.ID).
				Str("event", event.Name).
				Msg("event delivery failed")
			continue
		}
		h.logger.Debug().
			Str("sink", s.name).
			Str("event_id", event.ID).
			Str("event", event.Name).
			Msg("event delivered")
	}
}
