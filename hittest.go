package circlebutton

// Radius returns the circle radius at the given progress, interpolating
// linearly between the collapse and expand radii. The endpoints are exact.
func Radius(g Geometry, progress float64) float64 {
	p := clamp01(progress)
	switch p {
	case 0:
		return g.CollapseRadius
	case 1:
		return g.ExpandRadius
	}
	return (g.ExpandRadius-g.CollapseRadius)*p + g.CollapseRadius
}

// IsInside reports whether (px, py) lies inside or on the circle at the given
// progress. Callers pass the progress current at press time.
func IsInside(px, py float64, g Geometry, progress float64) bool {
	r := Radius(g, progress)
	dx := px - g.CenterX
	dy := py - g.CenterY
	return dx*dx+dy*dy <= r*r
}
