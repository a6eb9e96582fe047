package models

import "time"

// SavedTrip is a bounded-history record of a previously planned trip
type SavedTrip struct {
	ID          int64     `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Days        int       `json:"days"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecentSearch is one entry of the recent city searches list
type RecentSearch struct {
	ID         int64     `json:"id"`
	City       string    `json:"city"`
	SearchedAt time.Time `json:"searched_at"`
}

// Favorite is a starred city
type Favorite struct {
	ID        int64     `json:"id"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardStats are the usage counters shown on the dashboard tiles
type DashboardStats struct {
	SearchCount   int64 `json:"search_count"`
	TripCount     int64 `json:"trip_count"`
	FavoriteCount int64 `json:"favorite_count"`
}
