package planner

import "github.com/weatherly/weatherly-backend-go/internal/models"

// buildCostBreakdown computes the five fixed cost lines for the trip:
// per-day rate by budget tier times duration. Unrecognized tiers get
// moderate rates. Category order is fixed.
func buildCostBreakdown(days int, tier models.BudgetTier) ([]models.CostLine, int64) {
	rates, ok := costRates[tier]
	if !ok {
		rates = costRates[models.BudgetTierModerate]
	}

	d := int64(days)
	lines := []models.CostLine{
		{Label: "Accommodation", PerDay: rates.Hotel, Amount: rates.Hotel * d},
		{Label: "Food & Dining", PerDay: rates.Food, Amount: rates.Food * d},
		{Label: "Transportation", PerDay: rates.Transport, Amount: rates.Transport * d},
		{Label: "Activities", PerDay: rates.Activities, Amount: rates.Activities * d},
		{Label: "Miscellaneous", PerDay: rates.Misc, Amount: rates.Misc * d},
	}

	var total int64
	for _, line := range lines {
		total += line.Amount
	}

	return lines, total
}
