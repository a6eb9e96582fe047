package planner

import (
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// bestTimeToVisit picks the recommended season range for the trip.
// The first preference tag decides; an empty list defaults to
// relaxation, an unknown tag to the generic range.
func bestTimeToVisit(destination string, prefs []models.PreferenceTag) (string, string) {
	tag := models.PrefRelaxation
	if len(prefs) > 0 {
		tag = prefs[0]
	}

	seasonRange, ok := bestTimeRanges[tag]
	if !ok {
		seasonRange = defaultBestTime
	}

	note := fmt.Sprintf("Based on your %q preference for %s.", string(tag), destination)
	return seasonRange, note
}
