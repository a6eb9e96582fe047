package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/weatherly/weatherly-backend-go/internal/api"
	"github.com/weatherly/weatherly-backend-go/internal/config"
	"github.com/weatherly/weatherly-backend-go/internal/database"
	"github.com/weatherly/weatherly-backend-go/internal/models"
)

type stubProvider struct {
	cities map[string]*models.CurrentWeather
}

func (p *stubProvider) CurrentByCity(_ context.Context, city string) (*models.CurrentWeather, error) {
	if w, ok := p.cities[city]; ok {
		return w, nil
	}
	return nil, errors.New("city not found")
}

func (p *stubProvider) CurrentByCoords(_ context.Context, lat, lon float64) (*models.CurrentWeather, error) {
	for _, w := range p.cities {
		if w.Lat == lat && w.Lon == lon {
			return w, nil
		}
	}
	return nil, errors.New("no city at coordinates")
}

func (p *stubProvider) ForecastByCity(_ context.Context, city string) (*models.Forecast, error) {
	if _, ok := p.cities[city]; !ok {
		return nil, errors.New("city not found")
	}
	return &models.Forecast{City: city, Days: []models.DailyForecast{{Condition: "Clear", High: 30, Low: 22}}}, nil
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	cfg := &config.Config{
		AllowedOrigins: []string{"http://localhost:5173"},
		RateLimit:      1000,
		RateWindow:     time.Minute,
	}
	provider := &stubProvider{cities: map[string]*models.CurrentWeather{
		"Goa":   {City: "Goa", Lat: 15.2993, Lon: 74.1240, Temperature: 28, Condition: "Clear", Description: "clear sky"},
		"Delhi": {City: "Delhi", Lat: 28.6139, Lon: 77.2090, Temperature: 18, Condition: "Haze", Description: "haze"},
	}}

	return api.SetupRouter(cfg, db, provider)
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return env
}

func TestHealth(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCurrentWeatherByCity(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/weather?city=Goa", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var current models.CurrentWeather
	if err := json.Unmarshal(decode(t, w).Data, &current); err != nil {
		t.Fatalf("failed to decode weather: %v", err)
	}
	if current.City != "Goa" || current.Temperature != 28 {
		t.Fatalf("unexpected weather: %+v", current)
	}
}

func TestCurrentWeatherMissingParams(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/weather", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestCurrentWeatherUpstreamFailure(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/weather?city=Atlantis", "")
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestWeatherSearchRecordedOnDashboard(t *testing.T) {
	router := testRouter(t)

	doRequest(t, router, http.MethodGet, "/api/v1/weather?city=Goa", "")
	doRequest(t, router, http.MethodGet, "/api/v1/weather?city=Delhi", "")

	w := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/searches", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var searches []models.RecentSearch
	if err := json.Unmarshal(decode(t, w).Data, &searches); err != nil {
		t.Fatalf("failed to decode searches: %v", err)
	}
	if len(searches) != 2 || searches[0].City != "Delhi" {
		t.Fatalf("unexpected searches: %+v", searches)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/dashboard/stats", "")
	var stats models.DashboardStats
	if err := json.Unmarshal(decode(t, w).Data, &stats); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	if stats.SearchCount != 2 {
		t.Fatalf("expected search count 2, got %d", stats.SearchCount)
	}
}

func TestForecastByCity(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/forecast?city=Goa", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var forecast models.Forecast
	if err := json.Unmarshal(decode(t, w).Data, &forecast); err != nil {
		t.Fatalf("failed to decode forecast: %v", err)
	}
	if forecast.City != "Goa" || len(forecast.Days) != 1 {
		t.Fatalf("unexpected forecast: %+v", forecast)
	}
}

func TestPlanTrip(t *testing.T) {
	router := testRouter(t)

	body := `{
		"origin": "Delhi",
		"destination": "Goa",
		"start_date": "2026-01-10",
		"end_date": "2026-01-14",
		"budget": "luxury",
		"preferences": ["beach"]
	}`
	w := doRequest(t, router, http.MethodPost, "/api/v1/trips/plan", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var plan models.TripPlan
	if err := json.Unmarshal(decode(t, w).Data, &plan); err != nil {
		t.Fatalf("failed to decode plan: %v", err)
	}
	if plan.Days != 5 || plan.Suitability != 92 || plan.BestTime != "November - February" {
		t.Fatalf("unexpected plan: days=%d suitability=%d best_time=%s", plan.Days, plan.Suitability, plan.BestTime)
	}
	if plan.TotalCost != 5*(12000+3000+2500+2000+1000) {
		t.Fatalf("unexpected total cost: %d", plan.TotalCost)
	}

	// planning shows up in history
	w = doRequest(t, router, http.MethodGet, "/api/v1/trips", "")
	var trips []models.SavedTrip
	if err := json.Unmarshal(decode(t, w).Data, &trips); err != nil {
		t.Fatalf("failed to decode trips: %v", err)
	}
	if len(trips) != 1 || trips[0].Destination != "Goa" {
		t.Fatalf("unexpected history: %+v", trips)
	}
}

func TestPlanTripValidation(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{"missing destination", `{"origin":"Delhi","start_date":"2026-01-10","end_date":"2026-01-14"}`},
		{"bad date format", `{"origin":"Delhi","destination":"Goa","start_date":"10/01/2026","end_date":"2026-01-14"}`},
		{"inverted range", `{"origin":"Delhi","destination":"Goa","start_date":"2026-01-14","end_date":"2026-01-10"}`},
	}
	for _, tc := range cases {
		w := doRequest(t, router, http.MethodPost, "/api/v1/trips/plan", tc.body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, w.Code)
		}
	}
}

func TestFavoriteToggleAndList(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodPost, "/api/v1/favorites/toggle", `{"city":"Goa"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = doRequest(t, router, http.MethodGet, "/api/v1/favorites", "")
	var favorites []models.Favorite
	if err := json.Unmarshal(decode(t, w).Data, &favorites); err != nil {
		t.Fatalf("failed to decode favorites: %v", err)
	}
	if len(favorites) != 1 || favorites[0].City != "Goa" {
		t.Fatalf("unexpected favorites: %+v", favorites)
	}

	// second toggle removes it
	doRequest(t, router, http.MethodPost, "/api/v1/favorites/toggle", `{"city":"Goa"}`)
	w = doRequest(t, router, http.MethodGet, "/api/v1/favorites", "")
	favorites = nil
	if err := json.Unmarshal(decode(t, w).Data, &favorites); err != nil {
		t.Fatalf("failed to decode favorites: %v", err)
	}
	if len(favorites) != 0 {
		t.Fatalf("expected no favorites after second toggle, got %+v", favorites)
	}
}

func TestRemoveMissingFavorite(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodDelete, "/api/v1/favorites/Nowhere", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCitySuggestions(t *testing.T) {
	router := testRouter(t)

	w := doRequest(t, router, http.MethodGet, "/api/v1/cities?q=de", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var cities []string
	if err := json.Unmarshal(decode(t, w).Data, &cities); err != nil {
		t.Fatalf("failed to decode cities: %v", err)
	}
	if len(cities) != 1 || cities[0] != "Delhi" {
		t.Fatalf("unexpected suggestions: %v", cities)
	}
}
