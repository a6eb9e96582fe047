package repository

import (
	"database/sql"
	"fmt"
)

// Counter names tracked on the dashboard
const (
	CounterSearches = "searches"
	CounterTrips    = "trips"
)

// CounterRepository handles database operations for usage counters
type CounterRepository struct {
	db *sql.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *sql.DB) *CounterRepository {
	return &CounterRepository{db: db}
}

// Increment adds one to the named counter, creating it at 1 if absent
func (r *CounterRepository) Increment(name string) error {
	query := `
		INSERT INTO counters (name, value) VALUES (?, 1)
		ON CONFLICT(name) DO UPDATE SET value = value + 1
	`
	if _, err := r.db.Exec(query, name); err != nil {
		return fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return nil
}

// Get returns the named counter's value, zero if absent
func (r *CounterRepository) Get(name string) (int64, error) {
	var value int64
	err := r.db.QueryRow("SELECT value FROM counters WHERE name = ?", name).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return value, nil
}
