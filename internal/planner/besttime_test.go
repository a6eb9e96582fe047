package planner

import (
	"strings"
	"testing"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

func TestBestTimeFirstTagWins(t *testing.T) {
	seasonRange, note := bestTimeToVisit("Goa", []models.PreferenceTag{models.PrefBeach, models.PrefCultural})
	if seasonRange != "November - February" {
		t.Fatalf("expected beach range, got %s", seasonRange)
	}
	if !strings.Contains(note, "beach") || !strings.Contains(note, "Goa") {
		t.Fatalf("note should mention tag and destination: %s", note)
	}
}

func TestBestTimeDefaultsToRelaxation(t *testing.T) {
	seasonRange, note := bestTimeToVisit("Manali", nil)
	if seasonRange != "September - November" {
		t.Fatalf("expected relaxation default, got %s", seasonRange)
	}
	if !strings.Contains(note, "relaxation") {
		t.Fatalf("note should mention the defaulted tag: %s", note)
	}
}

func TestBestTimeUnknownTagFallsBack(t *testing.T) {
	seasonRange, _ := bestTimeToVisit("Oslo", []models.PreferenceTag{"skiing"})
	if seasonRange != "October - March" {
		t.Fatalf("expected generic fallback, got %s", seasonRange)
	}
}
