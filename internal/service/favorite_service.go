package service

import (
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
	"github.com/weatherly/weatherly-backend-go/internal/repository"
)

// FavoriteService handles business logic for favorite cities
type FavoriteService struct {
	favoriteRepo *repository.FavoriteRepository
}

// NewFavoriteService creates a new favorite service
func NewFavoriteService(favoriteRepo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{favoriteRepo: favoriteRepo}
}

// List returns all favorite cities
func (s *FavoriteService) List() ([]models.Favorite, error) {
	return s.favoriteRepo.List()
}

// Toggle flips a city's favorite status and reports the new state
func (s *FavoriteService) Toggle(city string) (favorited bool, err error) {
	exists, err := s.favoriteRepo.Exists(city)
	if err != nil {
		return false, err
	}
	if exists {
		if _, err := s.favoriteRepo.Remove(city); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.favoriteRepo.Add(city); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes a favorite by city name
func (s *FavoriteService) Remove(city string) error {
	removed, err := s.favoriteRepo.Remove(city)
	if err != nil {
		return err
	}
	if !removed {
		return fmt.Errorf("favorite not found: %s", city)
	}
	return nil
}
