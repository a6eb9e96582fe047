package models

import (
	"time"

	"github.com/google/uuid"
)

// BudgetTier controls the per-day cost rates used in the cost breakdown
type BudgetTier string

const (
	BudgetTierBudget   BudgetTier = "budget"
	BudgetTierModerate BudgetTier = "moderate"
	BudgetTierPremium  BudgetTier = "premium"
	BudgetTierLuxury   BudgetTier = "luxury"
)

// PreferenceTag is one of the fixed trip-style categories selected by the user
type PreferenceTag string

const (
	PrefAdventure   PreferenceTag = "adventure"
	PrefRelaxation  PreferenceTag = "relaxation"
	PrefHillStation PreferenceTag = "hill-station"
	PrefBeach       PreferenceTag = "beach"
	PrefCultural    PreferenceTag = "cultural"
	PrefWildlife    PreferenceTag = "wildlife"
	PrefRoadTrip    PreferenceTag = "road-trip"
	PrefFoodie      PreferenceTag = "foodie"
)

// TripRequest is the validated input to plan synthesis.
// Callers are responsible for non-empty origin/destination and a parsed,
// ordered date range before handing it to the planner.
type TripRequest struct {
	Origin      string
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Budget      BudgetTier
	Preferences []PreferenceTag
}

// PlanTripRequest is the JSON body accepted by POST /trips/plan
type PlanTripRequest struct {
	Origin      string   `json:"origin" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	StartDate   string   `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string   `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Budget      string   `json:"budget"`
	Preferences []string `json:"preferences"`
}

// DayPlan is a single itinerary day
type DayPlan struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Activities  []string `json:"activities"`
	WeatherNote string   `json:"weather_note,omitempty"`
}

// CostLine is one category of the trip cost breakdown
type CostLine struct {
	Label  string `json:"label"`
	PerDay int64  `json:"per_day"`
	Amount int64  `json:"amount"`
}

// TripPlan is the complete synthesized plan returned to the dashboard.
// Every field is populated; renderers may assume completeness.
type TripPlan struct {
	ID              uuid.UUID  `json:"id"`
	Origin          string     `json:"origin"`
	Destination     string     `json:"destination"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Days            int        `json:"days"`
	Summary         string     `json:"summary"`
	Suitability     int        `json:"suitability"`
	SuitabilityNote string     `json:"suitability_note"`
	BestTime        string     `json:"best_time"`
	BestTimeNote    string     `json:"best_time_note"`
	Itinerary       []DayPlan  `json:"itinerary"`
	PackingList     []string   `json:"packing_list"`
	CostBreakdown   []CostLine `json:"cost_breakdown"`
	TotalCost       int64      `json:"total_cost"`
	DistanceKm      float64    `json:"distance_km,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}
