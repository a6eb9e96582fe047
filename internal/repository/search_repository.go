package repository

import (
	"database/sql"
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// maxRecentSearches bounds the recent-searches list; older entries are
// evicted
const maxRecentSearches = 10

// SearchRepository handles database operations for recent city searches
type SearchRepository struct {
	db *sql.DB
}

// NewSearchRepository creates a new search repository
func NewSearchRepository(db *sql.DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Record stores a search for city: an earlier entry for the same city
// is replaced, the list is trimmed to the newest entries
func (r *SearchRepository) Record(city string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM recent_searches WHERE city = ?", city); err != nil {
		return fmt.Errorf("failed to dedupe search: %w", err)
	}

	if _, err := tx.Exec("INSERT INTO recent_searches (city) VALUES (?)", city); err != nil {
		return fmt.Errorf("failed to insert search: %w", err)
	}

	trim := `
		DELETE FROM recent_searches WHERE id NOT IN (
			SELECT id FROM recent_searches ORDER BY searched_at DESC, id DESC LIMIT ?
		)
	`
	if _, err := tx.Exec(trim, maxRecentSearches); err != nil {
		return fmt.Errorf("failed to trim searches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit search: %w", err)
	}
	return nil
}

// List returns recent searches, newest first
func (r *SearchRepository) List() ([]models.RecentSearch, error) {
	rows, err := r.db.Query("SELECT id, city, searched_at FROM recent_searches ORDER BY searched_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query searches: %w", err)
	}
	defer rows.Close()

	var searches []models.RecentSearch
	for rows.Next() {
		var s models.RecentSearch
		if err := rows.Scan(&s.ID, &s.City, &s.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search: %w", err)
		}
		searches = append(searches, s)
	}

	return searches, rows.Err()
}
