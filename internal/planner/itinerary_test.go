package planner

import (
	"strings"
	"testing"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

func TestItineraryLengthAndEndpoints(t *testing.T) {
	days := buildItinerary("Jaipur", 5, []models.PreferenceTag{models.PrefCultural}, nil)
	if len(days) != 5 {
		t.Fatalf("expected 5 days, got %d", len(days))
	}

	if days[0].Title != "Arrival Day" {
		t.Fatalf("unexpected first day title: %s", days[0].Title)
	}
	if len(days[0].Activities) != 2 {
		t.Fatalf("arrival day should have 2 activities, got %d", len(days[0].Activities))
	}
	if !strings.Contains(days[0].Activities[0], "Jaipur") {
		t.Fatalf("arrival activity should name the destination: %s", days[0].Activities[0])
	}

	last := days[4]
	if last.Title != "Departure Day" {
		t.Fatalf("unexpected last day title: %s", last.Title)
	}
	if len(last.Activities) != 3 || last.Activities[2] != "Departure" {
		t.Fatalf("unexpected departure activities: %v", last.Activities)
	}

	for i, day := range days {
		if day.Day != i+1 {
			t.Fatalf("day %d has index %d", i, day.Day)
		}
	}
}

func TestItineraryMiddleDayRotation(t *testing.T) {
	prefs := []models.PreferenceTag{models.PrefAdventure, models.PrefBeach}
	days := buildItinerary("Goa", 4, prefs, nil)

	// Day 2 is 0-based index 1: adventure[1], beach[1]
	day2 := days[1]
	if day2.Title != "Day 2 — Explore" {
		t.Fatalf("unexpected title: %s", day2.Title)
	}
	want := []string{"River rafting or kayaking", "Snorkeling or diving"}
	if len(day2.Activities) != len(want) {
		t.Fatalf("expected %d activities, got %v", len(want), day2.Activities)
	}
	for i, act := range want {
		if day2.Activities[i] != act {
			t.Fatalf("activity %d: expected %q, got %q", i, act, day2.Activities[i])
		}
	}
}

func TestItineraryGeneralFillWhenPreferencesInsufficient(t *testing.T) {
	days := buildItinerary("Rome", 3, nil, nil)
	middle := days[1]
	if len(middle.Activities) != 1 {
		t.Fatalf("expected the single general activity, got %v", middle.Activities)
	}
	if middle.Activities[0] != "Explore local area and nearby attractions" {
		t.Fatalf("unexpected general activity: %s", middle.Activities[0])
	}
}

func TestItineraryUnknownTagContributesNothing(t *testing.T) {
	days := buildItinerary("Oslo", 3, []models.PreferenceTag{"skiing"}, nil)
	middle := days[1]
	// Unknown tag is skipped; general fill takes over
	if len(middle.Activities) != 1 {
		t.Fatalf("expected 1 general activity, got %v", middle.Activities)
	}
}

func TestItinerarySingleDayMergesArrivalAndDeparture(t *testing.T) {
	days := buildItinerary("Agra", 1, nil, nil)
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
	day := days[0]
	if day.Title != "Arrival Day" {
		t.Fatalf("unexpected title: %s", day.Title)
	}
	if day.Activities[len(day.Activities)-1] != "Departure" {
		t.Fatalf("single-day trip should end with departure: %v", day.Activities)
	}
}

func TestItineraryWeatherNote(t *testing.T) {
	w := &models.WeatherSnapshot{Temperature: 21.6, Condition: "Clouds", Description: "scattered clouds"}
	days := buildItinerary("Paris", 3, nil, w)
	for _, day := range days {
		if day.WeatherNote != "Expected: scattered clouds, 22°C" {
			t.Fatalf("unexpected weather note: %s", day.WeatherNote)
		}
	}

	days = buildItinerary("Paris", 3, nil, nil)
	for _, day := range days {
		if day.WeatherNote != "" {
			t.Fatalf("expected empty weather note, got %s", day.WeatherNote)
		}
	}
}
