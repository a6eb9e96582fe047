package planner

import (
	"reflect"
	"testing"
	"time"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestTripDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2024-06-01", "2024-06-01", 1},
		{"2024-06-01", "2024-06-05", 5},
		{"2024-06-05", "2024-06-01", 1}, // inverted range floors at 1
	}

	for _, tt := range tests {
		if got := tripDays(date(tt.start), date(tt.end)); got != tt.want {
			t.Fatalf("tripDays(%s, %s): expected %d, got %d", tt.start, tt.end, tt.want, got)
		}
	}
}

func TestSynthesizeCompletePlan(t *testing.T) {
	req := models.TripRequest{
		Origin:      "Delhi",
		Destination: "Goa",
		StartDate:   date("2024-06-01"),
		EndDate:     date("2024-06-05"),
		Budget:      models.BudgetTierLuxury,
		Preferences: []models.PreferenceTag{models.PrefBeach, models.PrefFoodie},
	}
	weather := &models.WeatherSnapshot{Temperature: 28, Condition: "Clear", Description: "clear sky"}

	plan := Synthesize(req, weather)

	if plan.Days != 5 {
		t.Fatalf("expected 5 days, got %d", plan.Days)
	}
	if len(plan.Itinerary) != plan.Days {
		t.Fatalf("itinerary length %d != duration %d", len(plan.Itinerary), plan.Days)
	}
	if plan.Suitability != 92 {
		t.Fatalf("expected suitability 92, got %d", plan.Suitability)
	}
	if plan.BestTime != "November - February" {
		t.Fatalf("expected beach season range, got %s", plan.BestTime)
	}
	if plan.TotalCost != 5*(12000+3000+2500+2000+1000) {
		t.Fatalf("unexpected total cost %d", plan.TotalCost)
	}
	if plan.Summary == "" || plan.SuitabilityNote == "" || plan.BestTimeNote == "" {
		t.Fatal("expected all derived text fields populated")
	}
	if len(plan.PackingList) == 0 || len(plan.CostBreakdown) != 5 {
		t.Fatal("expected populated packing list and 5 cost lines")
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	req := models.TripRequest{
		Origin:      "Mumbai",
		Destination: "Manali",
		StartDate:   date("2024-12-20"),
		EndDate:     date("2024-12-27"),
		Budget:      models.BudgetTierBudget,
		Preferences: []models.PreferenceTag{models.PrefAdventure, models.PrefHillStation},
	}
	weather := &models.WeatherSnapshot{Temperature: 3, Condition: "Snow", Description: "light snow"}

	first := Synthesize(req, weather)
	second := Synthesize(req, weather)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs should yield structurally identical plans")
	}
}

func TestSynthesizeDegradesGracefully(t *testing.T) {
	req := models.TripRequest{
		Origin:      "Berlin",
		Destination: "Oslo",
		StartDate:   date("2024-03-01"),
		EndDate:     date("2024-03-03"),
		Budget:      "unknown_tier",
		Preferences: []models.PreferenceTag{"skiing"},
	}

	plan := Synthesize(req, nil)

	moderate, _ := buildCostBreakdown(3, models.BudgetTierModerate)
	if !reflect.DeepEqual(plan.CostBreakdown, moderate) {
		t.Fatal("unknown budget tier should price as moderate")
	}
	if plan.Suitability != 75 {
		t.Fatalf("absent weather should score 75, got %d", plan.Suitability)
	}
	if len(plan.Itinerary) != 3 {
		t.Fatalf("expected 3 itinerary days, got %d", len(plan.Itinerary))
	}
}
