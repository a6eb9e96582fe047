// Package weather fetches current conditions and forecasts from the
// OpenWeather API and maps them to the dashboard's models. The planner
// itself never talks to this package; services fetch a snapshot first
// and pass it down.
package weather

import (
	"context"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// Provider is the weather data source. Implementations own their
// timeout handling; callers treat any error as "weather unknown".
type Provider interface {
	CurrentByCity(ctx context.Context, city string) (*models.CurrentWeather, error)
	CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error)
	ForecastByCity(ctx context.Context, city string) (*models.Forecast, error)
}
