package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/weatherly/weatherly-backend-go/internal/models"
	"github.com/weatherly/weatherly-backend-go/internal/planner"
	"github.com/weatherly/weatherly-backend-go/internal/repository"
	"github.com/weatherly/weatherly-backend-go/internal/spatial"
	"github.com/weatherly/weatherly-backend-go/internal/weather"
)

// TripService handles business logic for trip planning
type TripService struct {
	provider    weather.Provider
	tripRepo    *repository.TripRepository
	counterRepo *repository.CounterRepository
}

// NewTripService creates a new trip service
func NewTripService(provider weather.Provider, tripRepo *repository.TripRepository, counterRepo *repository.CounterRepository) *TripService {
	return &TripService{
		provider:    provider,
		tripRepo:    tripRepo,
		counterRepo: counterRepo,
	}
}

// Plan synthesizes a trip plan for a validated request. Weather is
// fetched best effort: when the lookup fails the plan is still built,
// with neutral suitability and versatile packing.
func (s *TripService) Plan(ctx context.Context, req models.TripRequest) (*models.TripPlan, error) {
	destWeather := s.lookup(ctx, req.Destination)
	plan := planner.Synthesize(req, destWeather.Snapshot())

	plan.ID = uuid.New()
	plan.CreatedAt = time.Now().UTC()

	if destWeather != nil {
		if originWeather := s.lookup(ctx, req.Origin); originWeather != nil {
			plan.DistanceKm = spatial.KilometersBetween(
				originWeather.Lat, originWeather.Lon,
				destWeather.Lat, destWeather.Lon,
			)
		}
	}

	s.saveHistory(&plan)
	return &plan, nil
}

// History returns saved trips, newest first
func (s *TripService) History() ([]models.SavedTrip, error) {
	return s.tripRepo.List()
}

// HistoryPlan returns the full stored plan for a history entry,
// nil when the entry does not exist
func (s *TripService) HistoryPlan(id int64) (*models.TripPlan, error) {
	return s.tripRepo.GetPlan(id)
}

func (s *TripService) lookup(ctx context.Context, city string) *models.CurrentWeather {
	current, err := s.provider.CurrentByCity(ctx, city)
	if err != nil {
		log.Printf("Warning: weather unavailable for %s: %v", city, err)
		return nil
	}
	return current
}

// saveHistory is best effort; a storage failure never fails planning
func (s *TripService) saveHistory(plan *models.TripPlan) {
	if err := s.tripRepo.Save(plan); err != nil {
		log.Printf("Warning: failed to save trip history: %v", err)
		return
	}
	if err := s.counterRepo.Increment(repository.CounterTrips); err != nil {
		log.Printf("Warning: failed to increment trip counter: %v", err)
	}
}
