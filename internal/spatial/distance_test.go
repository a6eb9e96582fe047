package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistanceKnownPair(t *testing.T) {
	// Delhi to Mumbai, roughly 1150 km
	km := KilometersBetween(28.6139, 77.2090, 19.0760, 72.8777)
	if math.Abs(km-1150) > 25 {
		t.Fatalf("expected ~1150 km, got %.1f", km)
	}
}

func TestHaversineDistanceZero(t *testing.T) {
	if d := HaversineDistance(48.8566, 2.3522, 48.8566, 2.3522); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}
