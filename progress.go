package circlebutton

// ProgressModel holds the expand progress in [0, 1] and computes it from a
// seed and an interpolation fraction. The seed is the progress at the moment
// the current animation started, so reversing mid-flight is continuous.
type ProgressModel struct {
	current float64
	from    float64
}

// Progress returns the current progress.
func (p *ProgressModel) Progress() float64 {
	return p.current
}

// From returns the seed of the current animation.
func (p *ProgressModel) From() float64 {
	return p.from
}

// StartExpand records from as the seed of an expand animation.
func (p *ProgressModel) StartExpand(from float64) {
	p.from = clamp01(from)
}

// StartCollapse records from as the seed of a collapse animation.
func (p *ProgressModel) StartCollapse(from float64) {
	p.from = clamp01(from)
}

// StepExpand sets progress to from + (1-from)*t. Returns 1 exactly at t = 1.
func (p *ProgressModel) StepExpand(t float64) float64 {
	t = clamp01(t)
	v := p.from + (1-p.from)*t
	if t == 1 || v > 1 {
		v = 1
	}
	p.current = v
	return v
}

// StepCollapse sets progress to from*(1-t). Returns 0 exactly at t = 1.
func (p *ProgressModel) StepCollapse(t float64) float64 {
	t = clamp01(t)
	v := p.from * (1 - t)
	if v < 0 {
		v = 0
	}
	p.current = v
	return v
}
