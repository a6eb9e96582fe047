package planner

import "github.com/weatherly/weatherly-backend-go/internal/models"

// buildPackingList assembles the packing suggestions: fixed essentials,
// exactly one temperature-tiered clothing set (or a generic set when
// weather is unknown), rain gear when rain is mentioned, then per-tag
// extras. Duplicates are dropped, keeping first-insertion order.
func buildPackingList(w *models.WeatherSnapshot, prefs []models.PreferenceTag) []string {
	items := make([]string, 0, 16)
	items = append(items, packingEssentials...)

	if w != nil {
		switch temp := w.Temperature; {
		case temp < 10:
			items = appendAllUnique(items, packingCold)
		case temp < 20:
			items = appendAllUnique(items, packingCool)
		case temp < 30:
			items = appendAllUnique(items, packingMild)
		default:
			items = appendAllUnique(items, packingHot)
		}

		if mentionsRain(w) {
			items = appendAllUnique(items, packingRainGear)
		}
	} else {
		items = appendAllUnique(items, packingUnknown)
	}

	for _, pref := range prefs {
		items = appendAllUnique(items, packingExtras[pref])
	}

	return items
}

func appendAllUnique(items []string, extra []string) []string {
	for _, item := range extra {
		items = appendUnique(items, item)
	}
	return items
}
