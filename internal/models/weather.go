package models

import "time"

// WeatherSnapshot is the minimal weather input the trip planner needs.
// A nil snapshot means the destination weather is unknown.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"` // °C
	Condition   string  `json:"condition"`   // category, e.g. "Rain", "Clear"
	Description string  `json:"description"` // human text, e.g. "light rain"
}

// CurrentWeather is the full current-conditions record shown on the dashboard
type CurrentWeather struct {
	City        string  `json:"city"`
	Country     string  `json:"country,omitempty"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Temperature float64 `json:"temperature"` // °C
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"`
	WindSpeed   float64 `json:"wind_speed"` // m/s
	Visibility  int     `json:"visibility"` // meters
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
	Sunrise     int64   `json:"sunrise"` // Unix timestamp
	Sunset      int64   `json:"sunset"`  // Unix timestamp
	Timezone    int     `json:"timezone"` // UTC offset in seconds
}

// Snapshot reduces the full record to the planner input
func (w *CurrentWeather) Snapshot() *WeatherSnapshot {
	if w == nil {
		return nil
	}
	return &WeatherSnapshot{
		Temperature: w.Temperature,
		Condition:   w.Condition,
		Description: w.Description,
	}
}

// DailyForecast is one collapsed day of the multi-point forecast
type DailyForecast struct {
	Date      time.Time `json:"date"`
	Condition string    `json:"condition"`
	Icon      string    `json:"icon,omitempty"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	WindSpeed float64   `json:"wind_speed"`
	Humidity  int       `json:"humidity"`
}

// Forecast bundles the forecast response for a city
type Forecast struct {
	City  string          `json:"city"`
	Days  []DailyForecast `json:"days"`
	Hours []HourlyPoint   `json:"hours"`
}

// HourlyPoint is a single 3-hour forecast point used by the dashboard chart
type HourlyPoint struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
}
