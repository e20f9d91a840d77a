package geo

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	// Dhaka (Gulshan) to Dhaka (Motijheel), roughly 7.5 km.
	d := Distance(23.7925, 90.4078, 23.7330, 90.4172)
	if d < 6000 || d > 9000 {
		t.Errorf("Distance() = %.0f m, want roughly 7500 m", d)
	}

	if got := Distance(23.75, 90.39, 23.75, 90.39); math.Abs(got) > 0.001 {
		t.Errorf("Distance(same point) = %f, want 0", got)
	}
}

func TestWithinRadius(t *testing.T) {
	// ~111 m per 0.001 degree of latitude.
	if !WithinRadius(23.7500, 90.3900, 23.7505, 90.3900, 100) {
		t.Error("WithinRadius() = false for ~55 m offset with 100 m radius")
	}
	if WithinRadius(23.7500, 90.3900, 23.7600, 90.3900, 500) {
		t.Error("WithinRadius() = true for ~1.1 km offset with 500 m radius")
	}
}
