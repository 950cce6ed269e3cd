package circlebutton

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// sampleGrid returns n+1 evenly spaced values over [0, 1], endpoints included.
func sampleGrid(n int) []float64 {
	out := make([]float64, n+1)
	for i := range out {
		out[i] = float64(i) / float64(n)
	}
	out[n] = 1
	return out
}

// testGeometry is the 40/120 circle centered at (100, 300).
var testGeometry = Geometry{CollapseRadius: 40, ExpandRadius: 120, CenterX: 100, CenterY: 300}
