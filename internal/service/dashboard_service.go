package service

import (
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
	"github.com/weatherly/weatherly-backend-go/internal/repository"
)

// DashboardService handles business logic for the dashboard summary tiles
type DashboardService struct {
	searchRepo   *repository.SearchRepository
	favoriteRepo *repository.FavoriteRepository
	counterRepo  *repository.CounterRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(searchRepo *repository.SearchRepository, favoriteRepo *repository.FavoriteRepository, counterRepo *repository.CounterRepository) *DashboardService {
	return &DashboardService{
		searchRepo:   searchRepo,
		favoriteRepo: favoriteRepo,
		counterRepo:  counterRepo,
	}
}

// Stats returns the lifetime usage counters
func (s *DashboardService) Stats() (*models.DashboardStats, error) {
	searches, err := s.counterRepo.Get(repository.CounterSearches)
	if err != nil {
		return nil, fmt.Errorf("failed to load search count: %w", err)
	}
	trips, err := s.counterRepo.Get(repository.CounterTrips)
	if err != nil {
		return nil, fmt.Errorf("failed to load trip count: %w", err)
	}
	favorites, err := s.favoriteRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorite count: %w", err)
	}

	return &models.DashboardStats{
		SearchCount:   searches,
		TripCount:     trips,
		FavoriteCount: favorites,
	}, nil
}

// RecentSearches returns the bounded recent-search history, newest first
func (s *DashboardService) RecentSearches() ([]models.RecentSearch, error) {
	return s.searchRepo.List()
}
