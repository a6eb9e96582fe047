package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// maxSavedTrips bounds trip history; older trips are evicted
const maxSavedTrips = 10

// TripRepository handles database operations for saved trip plans
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// Save stores a generated plan and trims history to the newest entries
func (r *TripRepository) Save(plan *models.TripPlan) error {
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO saved_trips (plan_id, origin, destination, start_date, end_date, days, plan_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = tx.Exec(insert, plan.ID.String(), plan.Origin, plan.Destination,
		plan.StartDate, plan.EndDate, plan.Days, string(planJSON))
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	trim := `
		DELETE FROM saved_trips WHERE id NOT IN (
			SELECT id FROM saved_trips ORDER BY created_at DESC, id DESC LIMIT ?
		)
	`
	if _, err := tx.Exec(trim, maxSavedTrips); err != nil {
		return fmt.Errorf("failed to trim trips: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit trip: %w", err)
	}
	return nil
}

// List returns saved trips, newest first
func (r *TripRepository) List() ([]models.SavedTrip, error) {
	query := `
		SELECT id, origin, destination, start_date, end_date, days, created_at
		FROM saved_trips ORDER BY created_at DESC, id DESC
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	var trips []models.SavedTrip
	for rows.Next() {
		var t models.SavedTrip
		if err := rows.Scan(&t.ID, &t.Origin, &t.Destination, &t.StartDate, &t.EndDate, &t.Days, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, t)
	}

	return trips, rows.Err()
}

// GetPlan returns the full stored plan for a history entry
func (r *TripRepository) GetPlan(id int64) (*models.TripPlan, error) {
	var planJSON string
	err := r.db.QueryRow("SELECT plan_json FROM saved_trips WHERE id = ?", id).Scan(&planJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query trip %d: %w", id, err)
	}

	var plan models.TripPlan
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %d: %w", id, err)
	}
	return &plan, nil
}
