package service

import "strings"

// popularCities backs the destination autocomplete. Ordered roughly by
// global search volume with Indian leisure destinations appended.
var popularCities = []string{
	"London", "Delhi", "Mumbai", "Tokyo", "New York", "Paris",
	"Berlin", "Sydney", "Singapore", "Dubai", "Toronto", "Los Angeles",
	"Beijing", "Bangkok", "Istanbul", "Rome", "Barcelona", "Amsterdam",
	"Seoul", "Bangalore", "Kolkata", "Chennai", "Hyderabad", "Jaipur",
	"Goa", "Manali", "Shimla", "Darjeeling", "Udaipur", "Varanasi",
}

// CityService handles city name suggestions for the search box
type CityService struct{}

// NewCityService creates a new city service
func NewCityService() *CityService {
	return &CityService{}
}

// Suggest returns up to limit popular cities whose name starts with the
// query, case-insensitively. An empty query returns the full list head.
func (s *CityService) Suggest(query string, limit int) []string {
	if limit <= 0 {
		limit = 8
	}
	prefix := strings.ToLower(strings.TrimSpace(query))

	matches := make([]string, 0, limit)
	for _, city := range popularCities {
		if prefix != "" && !strings.HasPrefix(strings.ToLower(city), prefix) {
			continue
		}
		matches = append(matches, city)
		if len(matches) == limit {
			break
		}
	}
	return matches
}
