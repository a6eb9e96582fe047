package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// currentPayload mirrors the OpenWeather current-weather response
type currentPayload struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Visibility int    `json:"visibility"`
	Timezone   int    `json:"timezone"`
	Name       string `json:"name"`
}

// forecastPayload mirrors the OpenWeather 5-day/3-hour forecast response
type forecastPayload struct {
	List []struct {
		DateTime int64 `json:"dt"`
		Main     struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			TempMin   float64 `json:"temp_min"`
			TempMax   float64 `json:"temp_max"`
			Humidity  int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		DateText string `json:"dt_txt"`
	} `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// OpenWeather is the Provider implementation backed by the OpenWeather API
type OpenWeather struct {
	apiKey  string
	baseURL string
	client  *http.Client
	titler  cases.Caser
}

// NewOpenWeather creates the client. An empty baseURL selects the
// public API endpoint.
func NewOpenWeather(apiKey, baseURL string, timeout time.Duration) *OpenWeather {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &OpenWeather{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		titler:  cases.Title(language.English),
	}
}

// CurrentByCity fetches current conditions for a city name
func (p *OpenWeather) CurrentByCity(ctx context.Context, city string) (*models.CurrentWeather, error) {
	query := url.Values{}
	query.Set("q", city)
	return p.fetchCurrent(ctx, query)
}

// CurrentByCoords fetches current conditions for coordinates
func (p *OpenWeather) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%.4f", lat))
	query.Set("lon", fmt.Sprintf("%.4f", lon))
	return p.fetchCurrent(ctx, query)
}

func (p *OpenWeather) fetchCurrent(ctx context.Context, query url.Values) (*models.CurrentWeather, error) {
	var payload currentPayload
	if err := p.fetch(ctx, "/weather", query, &payload); err != nil {
		return nil, err
	}

	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("no weather data available")
	}

	return &models.CurrentWeather{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		Lat:         payload.Coord.Lat,
		Lon:         payload.Coord.Lon,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		TempMin:     payload.Main.TempMin,
		TempMax:     payload.Main.TempMax,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		Visibility:  payload.Visibility,
		Condition:   payload.Weather[0].Main,
		Description: payload.Weather[0].Description,
		Icon:        payload.Weather[0].Icon,
		Sunrise:     payload.Sys.Sunrise,
		Sunset:      payload.Sys.Sunset,
		Timezone:    payload.Timezone,
	}, nil
}

// ForecastByCity fetches the 3-hourly forecast and collapses it into
// daily entries, keeping the first 8 points as chart data
func (p *OpenWeather) ForecastByCity(ctx context.Context, city string) (*models.Forecast, error) {
	query := url.Values{}
	query.Set("q", city)

	var payload forecastPayload
	if err := p.fetch(ctx, "/forecast", query, &payload); err != nil {
		return nil, err
	}

	if len(payload.List) == 0 {
		return nil, fmt.Errorf("no forecast data available")
	}

	return &models.Forecast{
		City:  payload.City.Name,
		Days:  p.collapseDaily(&payload),
		Hours: p.hourlyPoints(&payload),
	}, nil
}

func (p *OpenWeather) hourlyPoints(payload *forecastPayload) []models.HourlyPoint {
	n := len(payload.List)
	if n > 8 {
		n = 8
	}
	points := make([]models.HourlyPoint, 0, n)
	for _, item := range payload.List[:n] {
		points = append(points, models.HourlyPoint{
			Time:        time.Unix(item.DateTime, 0).UTC(),
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
		})
	}
	return points
}

func (p *OpenWeather) collapseDaily(payload *forecastPayload) []models.DailyForecast {
	type dayAgg struct {
		high      float64
		low       float64
		condition string
		icon      string
		windSpeed float64
		humidity  int
	}

	daily := make(map[string]*dayAgg)
	for _, item := range payload.List {
		if len(item.Weather) == 0 {
			continue
		}

		date := strings.SplitN(item.DateText, " ", 2)[0]
		agg, exists := daily[date]
		if !exists {
			agg = &dayAgg{
				high:      item.Main.TempMax,
				low:       item.Main.TempMin,
				condition: item.Weather[0].Description,
				icon:      item.Weather[0].Icon,
				humidity:  item.Main.Humidity,
			}
			daily[date] = agg
		}

		if item.Main.TempMax > agg.high {
			agg.high = item.Main.TempMax
		}
		if item.Main.TempMin < agg.low {
			agg.low = item.Main.TempMin
		}
		if item.Wind.Speed > agg.windSpeed {
			agg.windSpeed = item.Wind.Speed
		}

		// The midday reading is the most representative for the day
		if strings.Contains(item.DateText, "12:00:00") {
			agg.condition = item.Weather[0].Description
			agg.icon = item.Weather[0].Icon
			agg.humidity = item.Main.Humidity
		}
	}

	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	result := make([]models.DailyForecast, 0, len(dates))
	for _, date := range dates {
		agg := daily[date]
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			continue
		}
		result = append(result, models.DailyForecast{
			Date:      parsed,
			Condition: p.titler.String(agg.condition),
			Icon:      agg.icon,
			High:      agg.high,
			Low:       agg.low,
			WindSpeed: agg.windSpeed,
			Humidity:  agg.humidity,
		})
	}

	return result
}

func (p *OpenWeather) fetch(ctx context.Context, endpoint string, query url.Values, target interface{}) error {
	query.Set("appid", p.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to parse weather response: %w", err)
	}

	return nil
}
