package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harshitrajsinha/onecall-weather-go/internal/events"
)

func newTestDB(t *testing.T) *DBClient {
	t.Helper()

	dbClient, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { dbClient.Close() })

	if err := dbClient.LoadDataToDatabase(); err != nil {
		t.Fatalf("LoadDataToDatabase: %v", err)
	}
	return dbClient
}

func TestLatestEventEmpty(t *testing.T) {
	dbClient := newTestDB(t)

	if _, err := dbClient.LatestEvent(context.Background()); !errors.Is(err, ErrNoEvents) {
		t.Fatalf("expected ErrNoEvents, got %v", err)
	}
}

func TestDeliverAndLatestEvent(t *testing.T) {
	dbClient := newTestDB(t)
	ctx := context.Background()

	older := events.Event{
		ID:        "e1",
		Name:      events.NameOneCallData,
		Payload:   map[string]any{"temp": 60},
		CreatedAt: time.Date(2026, time.October, 17, 8, 0, 0, 0, time.UTC),
	}
	newer := events.Event{
		ID:        "e2",
		Name:      events.NameOneCallData,
		Payload:   map[string]any{"temp": 72},
		CreatedAt: time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC),
	}

	for _, e := range []events.Event{newer, older} {
		if err := dbClient.Deliver(ctx, e); err != nil {
			t.Fatalf("Deliver(%s): %v", e.ID, err)
		}
	}

	got, err := dbClient.LatestEvent(ctx)
	if err != nil {
		t.Fatalf("LatestEvent: %v", err)
	}
	if got.ID != "e2" || got.Name != events.NameOneCallData {
		t.Fatalf("unexpected latest event %+v", got)
	}
	if string(got.Payload) != `{"temp":72}` {
		t.Fatalf("payload = %s", got.Payload)
	}
	if !got.CreatedAt.Equal(newer.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, newer.CreatedAt)
	}
}

func TestLatestEventOrdersSubSecondTimestamps(t *testing.T) {
	dbClient := newTestDB(t)
	ctx := context.Background()

	base := time.Date(2026, time.October, 17, 9, 0, 5, 0, time.UTC)
	stored := []events.Event{
		{ID: "whole", Name: events.NameOneCallData, Payload: map[string]any{}, CreatedAt: base},
		{ID: "tenth", Name: events.NameOneCallData, Payload: map[string]any{}, CreatedAt: base.Add(100 * time.Millisecond)},
		{ID: "newest", Name: events.NameOneCallData, Payload: map[string]any{}, CreatedAt: base.Add(120 * time.Millisecond)},
	}
	for _, e := range []events.Event{stored[2], stored[1], stored[0]} {
		if err := dbClient.Deliver(ctx, e); err != nil {
			t.Fatalf("Deliver(%s): %v", e.ID, err)
		}
	}

	got, err := dbClient.LatestEvent(ctx)
	if err != nil {
		t.Fatalf("LatestEvent: %v", err)
	}
	if got.ID != "newest" {
		t.Fatalf("latest = %s, want newest", got.ID)
	}
	if !got.CreatedAt.Equal(stored[2].CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, stored[2].CreatedAt)
	}
}

func TestDeliverRejectsDuplicateID(t *testing.T) {
	dbClient := newTestDB(t)
	ctx := context.Background()

	e := events.New(events.NameOneCallData, map[string]any{})
	if err := dbClient.Deliver(ctx, e); err != nil {
		t.Fatalf("first Deliver: %v", err)
	}
	if err := dbClient.Deliver(ctx, e); err == nil {
		t.Fatalf("expected error for duplicate event id")
	}
}

func TestHealthCheck(t *testing.T) {
	dbClient := newTestDB(t)

	if err := dbClient.HealthCheck(); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
}

func TestLoadDataToDatabaseIsRepeatable(t *testing.T) {
	dbClient := newTestDB(t)

	if err := dbClient.LoadDataToDatabase(); err != nil {
		t.Fatalf("second LoadDataToDatabase: %v", err)
	}
}
