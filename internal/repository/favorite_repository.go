package repository

import (
	"database/sql"
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// FavoriteRepository handles database operations for favorite cities
type FavoriteRepository struct {
	db *sql.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *sql.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// List returns all favorites, oldest first
func (r *FavoriteRepository) List() ([]models.Favorite, error) {
	rows, err := r.db.Query("SELECT id, city, created_at FROM favorites ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	var favorites []models.Favorite
	for rows.Next() {
		var f models.Favorite
		if err := rows.Scan(&f.ID, &f.City, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, f)
	}

	return favorites, rows.Err()
}

// Add stores a city as favorite. Adding an existing favorite is a no-op.
func (r *FavoriteRepository) Add(city string) error {
	_, err := r.db.Exec("INSERT OR IGNORE INTO favorites (city) VALUES (?)", city)
	if err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// Remove deletes a favorite by city name. Returns whether a row existed.
func (r *FavoriteRepository) Remove(city string) (bool, error) {
	result, err := r.db.Exec("DELETE FROM favorites WHERE city = ?", city)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check removed rows: %w", err)
	}
	return affected > 0, nil
}

// Exists reports whether a city is favorited
func (r *FavoriteRepository) Exists(city string) (bool, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM favorites WHERE city = ?", city).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return count > 0, nil
}

// Count returns the number of favorites
func (r *FavoriteRepository) Count() (int64, error) {
	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM favorites").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}
