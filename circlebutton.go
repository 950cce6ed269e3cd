package circlebutton

import (
	"image/color"
	"math"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Predefined colors used by DefaultConfig.
var (
	ColorRed  = Color{1, 0, 0, 1}
	ColorGray = Color{0x88 / 255.0, 0x88 / 255.0, 0x88 / 255.0, 1}
)

// RGBA converts the color to a premultiplied 8-bit color.RGBA.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R)*clamp01(c.A)*255 + 0.5),
		G: uint8(clamp01(c.G)*clamp01(c.A)*255 + 0.5),
		B: uint8(clamp01(c.B)*clamp01(c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

// Vec2 is a 2D point or offset.
type Vec2 struct {
	X, Y float64
}

// Geometry is the circle layout derived from the widget size.
// CenterX is the horizontal center of the content area, CenterY its bottom edge.
type Geometry struct {
	CollapseRadius float64
	ExpandRadius   float64
	CenterX        float64
	CenterY        float64
}

// Insets is padding around the content area.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// State is the gesture controller state.
type State uint8

const (
	StateIdle          State = iota // collapsed or fully settled
	StatePressedInside              // pressed inside the circle, not moved yet
	StateDragging                   // pressed and moved; tilt follows the pointer
	StateReleasing                  // released; collapse animation in flight
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePressedInside:
		return "pressed"
	case StateDragging:
		return "dragging"
	case StateReleasing:
		return "releasing"
	default:
		return "unknown"
	}
}

// Direction is the direction of the running progress animation.
type Direction uint8

const (
	DirectionIdle Direction = iota
	DirectionExpanding
	DirectionCollapsing
)

func (d Direction) String() string {
	switch d {
	case DirectionExpanding:
		return "expanding"
	case DirectionCollapsing:
		return "collapsing"
	default:
		return "idle"
	}
}

// AnimationID identifies one run of an expand or collapse animation.
// Zero never identifies a running animation.
type AnimationID uint64

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
