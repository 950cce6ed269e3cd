package circlebutton

// FontMetrics describes a font at a given size. All values are positive.
type FontMetrics struct {
	Ascent  float64 // baseline to top of the line box
	Descent float64 // baseline to bottom of the line box
	LineGap float64
}

// Height is the line box height.
func (m FontMetrics) Height() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Canvas is the drawing surface supplied by the host each frame. The button
// never owns it.
//
// m is applied to the geometry before rasterizing. Backends that cannot
// rasterize projective transforms may use m.AffineAt around the anchor.
type Canvas interface {
	// FillCircle fills a circle of radius r centered at (cx, cy).
	FillCircle(cx, cy, r float64, m Matrix, c Color)
	// FillText draws s horizontally centered on x with its baseline at y.
	FillText(s string, x, y, size float64, m Matrix, c Color)
	// FontMetrics returns the metrics of the canvas font at size.
	FontMetrics(size float64) FontMetrics
}

// textBaseline returns the baseline that vertically centers a line of text
// in the line box sitting on top of a circle of radius r.
func textBaseline(cy, r float64, fm FontMetrics) float64 {
	return cy - r - fm.Height()/2 + (fm.Ascent-fm.Descent)/2
}
