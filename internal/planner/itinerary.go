package planner

import (
	"fmt"
	"math"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// buildItinerary generates one DayPlan per trip day. The first day is
// arrival, the last departure; middle days rotate through the activity
// list of each stated preference at index (day mod 6), deduplicated
// within the day, topped up from the general list when preferences
// alone yield fewer than two activities.
//
// A single-day trip merges both roles: the arrival activities plus the
// departure activity under the "Arrival Day" title.
func buildItinerary(destination string, days int, prefs []models.PreferenceTag, w *models.WeatherSnapshot) []models.DayPlan {
	weatherNote := ""
	if w != nil {
		weatherNote = fmt.Sprintf("Expected: %s, %d°C", w.Description, int(math.Round(w.Temperature)))
	}

	itinerary := make([]models.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		var title string
		var activities []string

		switch {
		case i == 0:
			title = "Arrival Day"
			activities = append(activities,
				fmt.Sprintf("Arrive at %s, check into accommodation", destination),
				"Settle in and explore the nearby area",
			)
			if days == 1 {
				activities = append(activities, "Departure")
			}
		case i == days-1:
			title = "Departure Day"
			activities = append(activities,
				"Pack and check out",
				"Last-minute souvenir shopping",
				"Departure",
			)
		default:
			title = fmt.Sprintf("Day %d — Explore", i+1)
			for _, pref := range prefs {
				acts, ok := tagActivities[pref]
				if !ok {
					continue
				}
				activities = appendUnique(activities, acts[i%len(acts)])
			}
			if len(activities) < 2 {
				general := generalActivities(destination)
				activities = appendUnique(activities, general[i%len(general)])
			}
		}

		itinerary = append(itinerary, models.DayPlan{
			Day:         i + 1,
			Title:       title,
			Activities:  activities,
			WeatherNote: weatherNote,
		})
	}

	return itinerary
}

// appendUnique appends item unless the slice already contains it
func appendUnique(items []string, item string) []string {
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}
