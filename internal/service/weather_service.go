package service

import (
	"context"
	"fmt"
	"log"

	"github.com/weatherly/weatherly-backend-go/internal/models"
	"github.com/weatherly/weatherly-backend-go/internal/repository"
	"github.com/weatherly/weatherly-backend-go/internal/weather"
)

// WeatherService handles business logic for weather lookups
type WeatherService struct {
	provider    weather.Provider
	searchRepo  *repository.SearchRepository
	counterRepo *repository.CounterRepository
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider weather.Provider, searchRepo *repository.SearchRepository, counterRepo *repository.CounterRepository) *WeatherService {
	return &WeatherService{
		provider:    provider,
		searchRepo:  searchRepo,
		counterRepo: counterRepo,
	}
}

// CurrentByCity returns current conditions for a city and records the search
func (s *WeatherService) CurrentByCity(ctx context.Context, city string) (*models.CurrentWeather, error) {
	current, err := s.provider.CurrentByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather for %s: %w", city, err)
	}
	s.recordSearch(current.City)
	return current, nil
}

// CurrentByCoords returns current conditions for a coordinate pair
func (s *WeatherService) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	current, err := s.provider.CurrentByCoords(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weather for %.4f,%.4f: %w", lat, lon, err)
	}
	s.recordSearch(current.City)
	return current, nil
}

// ForecastByCity returns the multi-day forecast for a city
func (s *WeatherService) ForecastByCity(ctx context.Context, city string) (*models.Forecast, error) {
	forecast, err := s.provider.ForecastByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast for %s: %w", city, err)
	}
	return forecast, nil
}

// recordSearch updates recent-search history and the search counter.
// History is best effort; a storage failure never fails the lookup.
func (s *WeatherService) recordSearch(city string) {
	if city == "" {
		return
	}
	if err := s.searchRepo.Record(city); err != nil {
		log.Printf("Warning: failed to record search for %s: %v", city, err)
		return
	}
	if err := s.counterRepo.Increment(repository.CounterSearches); err != nil {
		log.Printf("Warning: failed to increment search counter: %v", err)
	}
}
