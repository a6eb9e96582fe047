package planner

import (
	"strings"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// scoreSuitability rates destination weather for the trip on a 0-100
// scale. Branches form an ordered decision list: rain overrides a
// pleasant temperature, and a nil snapshot yields the neutral default.
func scoreSuitability(w *models.WeatherSnapshot) (int, string) {
	if w == nil {
		return 75, "Moderate weather conditions expected."
	}

	temp := w.Temperature
	switch {
	case temp >= 15 && temp <= 30 && !mentionsRainOrStorm(w):
		return 92, "Excellent weather! Perfect for outdoor activities."
	case mentionsRainOrStorm(w):
		return 45, "Rain expected. Pack waterproof gear and plan indoor activities."
	case temp < 5:
		return 55, "Very cold conditions. Heavy winter gear recommended."
	case temp < 15:
		return 70, "Cool weather. Light jacket recommended."
	case temp > 40:
		return 35, "Extreme heat warning. Limit outdoor activities."
	case temp > 30:
		return 60, "Hot weather expected. Stay hydrated and avoid midday sun."
	}

	return 75, "Moderate weather conditions expected."
}

// mentionsRainOrStorm checks both the condition category and the human
// description, since providers put "Rain" in one and "light rain" in
// the other
func mentionsRainOrStorm(w *models.WeatherSnapshot) bool {
	text := strings.ToLower(w.Condition + " " + w.Description)
	return strings.Contains(text, "rain") || strings.Contains(text, "storm")
}

// mentionsRain is the packing-list variant: rain gear is added for
// rain specifically
func mentionsRain(w *models.WeatherSnapshot) bool {
	text := strings.ToLower(w.Condition + " " + w.Description)
	return strings.Contains(text, "rain")
}
