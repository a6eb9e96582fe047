package planner

import (
	"fmt"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

// Fixed lookup tables driving itinerary, packing, best-time and cost
// generation. Each table covers the full preference-tag enum where it
// applies; lookups fall back rather than fail on unknown values.

// tagActivities maps every preference tag to its six representative
// activities. Middle itinerary days rotate through these by day index.
var tagActivities = map[models.PreferenceTag][]string{
	models.PrefAdventure: {
		"Trekking and mountain exploration",
		"River rafting or kayaking",
		"Camping under the stars",
		"Zip-lining or bungee jumping",
		"Rock climbing session",
		"Mountain biking trail",
	},
	models.PrefRelaxation: {
		"Spa and wellness retreat",
		"Yoga session at sunrise",
		"Leisurely nature walk",
		"Sunset meditation",
		"Scenic boat ride",
		"Resort pool and relaxation",
	},
	models.PrefHillStation: {
		"Scenic viewpoint visit",
		"Tea garden exploration",
		"Waterfall hike",
		"Local market shopping",
		"Nature photography walk",
		"Cable car / ropeway ride",
	},
	models.PrefBeach: {
		"Beach sunrise walk",
		"Snorkeling or diving",
		"Beach volleyball and games",
		"Sunset cruise",
		"Seafood tasting tour",
		"Water sports (parasailing, jet ski)",
	},
	models.PrefCultural: {
		"Historical monument tour",
		"Local museum visit",
		"Traditional art workshop",
		"Heritage walking tour",
		"Local cuisine cooking class",
		"Evening cultural performance",
	},
	models.PrefWildlife: {
		"Morning jungle safari",
		"Bird watching excursion",
		"Nature trail walk",
		"Wildlife photography session",
		"Evening safari drive",
		"Visit rescue/breeding center",
	},
	models.PrefRoadTrip: {
		"Early morning departure with scenic stops",
		"Local roadside café breakfast",
		"Explore a small town en route",
		"Scenic lake / river stop",
		"Sunset viewpoint visit",
		"Night drive with music and snacks",
	},
	models.PrefFoodie: {
		"Local street food tour",
		"Fine dining experience",
		"Cooking class with local chef",
		"Market ingredient shopping",
		"Traditional breakfast experience",
		"Dessert and café hopping",
	},
}

// generalActivities is the fallback rotation for days the stated
// preferences cannot fill on their own
func generalActivities(destination string) []string {
	return []string{
		fmt.Sprintf("Arrive at %s, check-in and freshen up", destination),
		"Explore local area and nearby attractions",
		"Visit popular landmarks and photo opportunities",
		"Try local cuisine at recommended restaurants",
		"Evening leisure walk and shopping",
		"Check-out and departure with memorable experiences",
	}
}

// bestTimeRanges maps each preference tag to its recommended season range
var bestTimeRanges = map[models.PreferenceTag]string{
	models.PrefAdventure:   "October - March",
	models.PrefRelaxation:  "September - November",
	models.PrefHillStation: "March - June",
	models.PrefBeach:       "November - February",
	models.PrefCultural:    "October - March",
	models.PrefWildlife:    "November - April",
	models.PrefRoadTrip:    "September - November",
	models.PrefFoodie:      "Year-round (Festival seasons preferred)",
}

// defaultBestTime covers tags the table does not know
const defaultBestTime = "October - March"

// packingEssentials go into every packing list, in this order
var packingEssentials = []string{
	"Passport / ID",
	"Charger & Power Bank",
	"Toiletries",
	"First Aid Kit",
	"Reusable Water Bottle",
}

// Temperature-tiered clothing sets. Exactly one tier applies,
// evaluated coldest first.
var (
	packingCold     = []string{"Heavy Jacket", "Thermal Wear", "Gloves & Beanie", "Warm Socks"}
	packingCool     = []string{"Light Jacket", "Sweater", "Long Pants"}
	packingMild     = []string{"T-Shirts", "Comfortable Shorts", "Light Layers"}
	packingHot      = []string{"Sunscreen (SPF 50+)", "Sunglasses", "Hat / Cap", "Light Cotton Clothes"}
	packingUnknown  = []string{"Versatile Layers", "Sunscreen", "Umbrella"}
	packingRainGear = []string{"Umbrella", "Raincoat / Poncho", "Waterproof Bag"}
)

// packingExtras maps preference tags to additional items. Tags without
// an entry contribute nothing.
var packingExtras = map[models.PreferenceTag][]string{
	models.PrefAdventure: {"Hiking Boots", "Backpack", "Torch / Headlamp"},
	models.PrefBeach:     {"Swimsuit", "Flip Flops", "Beach Towel"},
	models.PrefCultural:  {"Modest Clothing", "Notebook & Pen"},
	models.PrefWildlife:  {"Binoculars", "Camouflage Wear", "Insect Repellent"},
	models.PrefFoodie:    {"Antacids", "Wet Wipes"},
}

// dailyRates are per-day costs for one budget tier, in a single fixed
// currency unit
type dailyRates struct {
	Hotel      int64
	Food       int64
	Transport  int64
	Activities int64
	Misc       int64
}

// costRates indexes the per-day rate table by budget tier
var costRates = map[models.BudgetTier]dailyRates{
	models.BudgetTierBudget:   {Hotel: 800, Food: 400, Transport: 300, Activities: 200, Misc: 150},
	models.BudgetTierModerate: {Hotel: 2500, Food: 800, Transport: 600, Activities: 500, Misc: 300},
	models.BudgetTierPremium:  {Hotel: 5000, Food: 1500, Transport: 1200, Activities: 1000, Misc: 500},
	models.BudgetTierLuxury:   {Hotel: 12000, Food: 3000, Transport: 2500, Activities: 2000, Misc: 1000},
}
