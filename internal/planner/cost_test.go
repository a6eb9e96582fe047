package planner

import (
	"reflect"
	"testing"

	"github.com/weatherly/weatherly-backend-go/internal/models"
)

func TestCostBreakdownLuxury(t *testing.T) {
	lines, total := buildCostBreakdown(3, models.BudgetTierLuxury)

	if len(lines) != 5 {
		t.Fatalf("expected 5 cost lines, got %d", len(lines))
	}

	if lines[0].Label != "Accommodation" || lines[0].Amount != 36000 {
		t.Fatalf("unexpected accommodation line: %+v", lines[0])
	}

	if total != 61500 {
		t.Fatalf("expected total 61500, got %d", total)
	}

	wantOrder := []string{"Accommodation", "Food & Dining", "Transportation", "Activities", "Miscellaneous"}
	for i, line := range lines {
		if line.Label != wantOrder[i] {
			t.Fatalf("line %d: expected %s, got %s", i, wantOrder[i], line.Label)
		}
	}
}

func TestCostBreakdownUnknownTierUsesModerate(t *testing.T) {
	unknown, unknownTotal := buildCostBreakdown(4, "unknown_tier")
	moderate, moderateTotal := buildCostBreakdown(4, models.BudgetTierModerate)

	if !reflect.DeepEqual(unknown, moderate) || unknownTotal != moderateTotal {
		t.Fatalf("unknown tier should match moderate: %v vs %v", unknown, moderate)
	}
}
