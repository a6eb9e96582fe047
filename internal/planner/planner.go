// Package planner synthesizes complete trip plans from a trip request
// and an optional destination weather snapshot. It is pure: no I/O, no
// shared state, deterministic output for fixed inputs, and total over
// its input domain (unknown tiers, unknown tags and absent weather all
// fall back instead of failing).
package planner

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

const dateLayout = "2006-01-02"

// Synthesize builds the full trip plan. The caller supplies a validated
// request and, if available, the destination weather; a nil snapshot
// means weather is unknown. Identity fields (ID, CreatedAt, distance)
// are left zero for the service layer to fill.
func Synthesize(req models.TripRequest, weather *models.WeatherSnapshot) models.TripPlan {
	days := tripDays(req.StartDate, req.EndDate)

	score, scoreNote := scoreSuitability(weather)
	seasonRange, seasonNote := bestTimeToVisit(req.Destination, req.Preferences)
	itinerary := buildItinerary(req.Destination, days, req.Preferences, weather)
	packing := buildPackingList(weather, req.Preferences)
	costLines, total := buildCostBreakdown(days, req.Budget)

	return models.TripPlan{
		Origin:          req.Origin,
		Destination:     req.Destination,
		StartDate:       req.StartDate.Format(dateLayout),
		EndDate:         req.EndDate.Format(dateLayout),
		Days:            days,
		Summary:         summarize(req, days),
		Suitability:     score,
		SuitabilityNote: scoreNote,
		BestTime:        seasonRange,
		BestTimeNote:    seasonNote,
		Itinerary:       itinerary,
		PackingList:     packing,
		CostBreakdown:   costLines,
		TotalCost:       total,
	}
}

// tripDays counts trip duration inclusive of both endpoints, never
// below one day even for an inverted range
func tripDays(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

func summarize(req models.TripRequest, days int) string {
	curatedFor := "a great experience"
	if len(req.Preferences) > 0 {
		names := make([]string, len(req.Preferences))
		for i, pref := range req.Preferences {
			names[i] = string(pref)
		}
		curatedFor = strings.Join(names, ", ")
	}
	return fmt.Sprintf("A %d-day trip from %s to %s, curated for %s.", days, req.Origin, req.Destination, curatedFor)
}
