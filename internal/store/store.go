// Package store persists last-known-good backend responses in SQLite so the
// dashboard can render stale data while the backend is unreachable.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"airdash/internal/types"
)

// ErrNoSnapshot is returned when no snapshot exists for a location
var ErrNoSnapshot = errors.New("store: no snapshot")

// Snapshot resources
const (
	ResourceCurrent  = "current"
	ResourceForecast = "forecast"
	ResourceHistory  = "history"
)

// Store keeps one snapshot per (location, resource) pair
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	location   TEXT NOT NULL,
	resource   TEXT NOT NULL,
	payload    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL,
	PRIMARY KEY (location, resource)
);`

// Open opens (or creates) the snapshot database. Use ":memory:" in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle
func (s *Store) Close() error {
	return s.db.Close()
}

// PutCurrent stores the latest current-AQI snapshot for a location
func (s *Store) PutCurrent(ctx context.Context, location string, current *types.CurrentAQI) error {
	return s.put(ctx, location, ResourceCurrent, current)
}

// GetCurrent returns the stored current-AQI snapshot and its age
func (s *Store) GetCurrent(ctx context.Context, location string) (*types.CurrentAQI, time.Time, error) {
	var current types.CurrentAQI
	updatedAt, err := s.get(ctx, location, ResourceCurrent, &current)
	if err != nil {
		return nil, time.Time{}, err
	}
	return &current, updatedAt, nil
}

// PutRows stores forecast or history rows for a location
func (s *Store) PutRows(ctx context.Context, location, resource string, rows []types.ForecastRow) error {
	return s.put(ctx, location, resource, rows)
}

// GetRows returns stored forecast or history rows and their age
func (s *Store) GetRows(ctx context.Context, location, resource string) ([]types.ForecastRow, time.Time, error) {
	var rows []types.ForecastRow
	updatedAt, err := s.get(ctx, location, resource, &rows)
	if err != nil {
		return nil, time.Time{}, err
	}
	return rows, updatedAt, nil
}

func (s *Store) put(ctx context.Context, location, resource string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (location, resource, payload, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(location, resource) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		location, resource, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, location, resource string, out any) (time.Time, error) {
	var payload string
	var updatedAt time.Time
	err := s.db.QueryRowContext(ctx,
		`SELECT payload, updated_at FROM snapshots WHERE location = ? AND resource = ?`,
		location, resource).Scan(&payload, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoSnapshot
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return updatedAt, nil
}
