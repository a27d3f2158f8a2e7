// Package database initializes sqlite database and exposes least privilege methods
package database

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"database/sql"

	_ "github.com/mattn/go-sqlite3" // Package sqlite3 provides interface to SQLite3 databases.

	"github.com/harshitrajsinha/onecall-weather-go/internal/events"
)

//go:embed schema.sql
var schemaFS embed.FS

// createdAtLayout is fixed width so the text column sorts in time order
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNoEvents is returned when no event has been stored yet
var ErrNoEvents = errors.New("no onecall events stored")

// DBClient exposes restricted methods
type DBClient struct {
	db *sql.DB
}

// StoredEvent is a delivered event as read back from the database
type StoredEvent struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// InitDB initializes sqlite database connection pool
func InitDB(path string) (*DBClient, error) {

	var db *sql.DB
	var err error

	log.Println("Waiting for db startup ...")

	// Open database connection pool
	db, err = sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetConnMaxIdleTime(15 * time.Minute)
	db.SetConnMaxLifetime(10 * time.Minute)

	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err = db.PingContext(ctxWithTimeout); err != nil {
		return nil, fmt.Errorf("error connecting to database, %w", err)
	}

	log.Println("Successfully connected to database")

	return &DBClient{db: db}, nil

}

// HealthCheck performs health check on database by ping
func (dbC *DBClient) HealthCheck() error {
	ctxWithTimeout, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := dbC.db.PingContext(ctxWithTimeout); err != nil {
		return fmt.Errorf("error connecting to database, %w", err)
	}

	return nil
}

// Close closes the database connection pool
func (dbC *DBClient) Close() error {

	if err := dbC.db.Close(); err != nil {
		return fmt.Errorf("error closing database connection, %w", err)
	}
	return nil
}

// LoadDataToDatabase applies the embedded schema
func (dbC *DBClient) LoadDataToDatabase() error {

	// Read file content
	sqlFile, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("error reading schema file, %w", err)
	}
	log.Println("...loading schema file")

	tx, err := dbC.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction to load schema file, %w", err)
	}

	if _, err := tx.Exec(string(sqlFile)); err != nil {
		tx.Rollback()
		return fmt.Errorf("error executing schema file, %w", err)
	}

	return tx.Commit()
}

// Deliver stores a delivered event so the latest payload can be served later
func (dbC *DBClient) Deliver(ctx context.Context, event events.Event) error {

	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("error encoding event payload, %w", err)
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := "INSERT INTO onecall_events (id, name, payload, created_at) VALUES (?, ?, ?, ?)"
	if _, err := dbC.db.ExecContext(ctxWithTimeout, query, event.ID, event.Name, string(payload), event.CreatedAt.UTC().Format(createdAtLayout)); err != nil {
		return fmt.Errorf("error storing event in database, %w", err)
	}

	return nil
}

// LatestEvent fetches the most recently stored event
func (dbC *DBClient) LatestEvent(ctx context.Context) (StoredEvent, error) {

	var stored StoredEvent
	var payload, createdAt string

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	query := "SELECT id, name, payload, created_at FROM onecall_events ORDER BY created_at DESC, rowid DESC LIMIT 1"
	err := dbC.db.QueryRowContext(ctxWithTimeout, query).Scan(&stored.ID, &stored.Name, &payload, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stored, ErrNoEvents
		}
		return stored, fmt.Errorf("error fetching latest event, %w", err)
	}

	stored.Payload = json.RawMessage(payload)
	stored.CreatedAt, err = time.Parse(createdAtLayout, createdAt)
	if err != nil {
		return stored, fmt.Errorf("error parsing event timestamp, %w", err)
	}

	return stored, nil
}
