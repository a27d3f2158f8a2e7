package events

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewStampsEvent(t *testing.T) {
	a := New(NameOneCallData, map[string]any{"temp": 72})
	b := New(NameOneCallData, nil)

	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
	if a.Name != NameOneCallData {
		t.Fatalf("name = %s", a.Name)
	}
	if a.CreatedAt.IsZero() || a.CreatedAt.Location().String() != "UTC" {
		t.Fatalf("expected UTC timestamp, got %v", a.CreatedAt)
	}
}

func TestHubDeliversToEverySinkInOrder(t *testing.T) {
	var buf bytes.Buffer
	hub := NewHub(zerolog.New(&buf))

	var order []string
	hub.Register("first", SinkFunc(func(_ context.Context, e Event) error {
		order = append(order, "first:"+e.ID)
		return errors.New("disk full")
	}))
	hub.Register("second", SinkFunc(func(_ context.Context, e Event) error {
		order = append(order, "second:"+e.ID)
		return nil
	}))

	event := Event{ID: "e1", Name: NameOneCallData}
	hub.Notify(context.Background(), event)

	if len(order) != 2 || order[0] != "first:e1" || order[1] != "second:e1" {
		t.Fatalf("unexpected delivery order %v", order)
	}

	out := buf.String()
	if !strings.Contains(out, "event delivery failed") || !strings.Contains(out, "disk full") {
		t.Fatalf("expected failure log, got %s", out)
	}
	if !strings.Contains(out, `"sink":"first"`) {
		t.Fatalf("expected sink name in log, got %s", out)
	}
}

func TestHubWithoutSinks(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	hub.Notify(context.Background(), New(NameOneCallData, nil))
}
