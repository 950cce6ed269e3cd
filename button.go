package circlebutton

import (
	"log/slog"
	"math"

	"github.com/tanema/gween/ease"
)

// Button is the hold-and-drag circle. It consumes pointer events and
// animation ticks, and draws itself onto a Canvas.
//
// Button is not safe for concurrent use. All calls are expected from the
// UI thread, in event order.
type Button struct {
	cfg      Config
	geometry Geometry
	refSize  float64 // max(content width, content height)

	progress  ProgressModel
	direction Direction
	animID    AnimationID
	nextID    AnimationID
	driver    AnimationDriver

	state   State
	dragged bool
	lastX   float64
	lastY   float64
	tilt    Matrix

	sink  EventSink
	dirty bool
}

var _ Ticker = (*Button)(nil)

// Option configures a Button at construction.
type Option func(*Button)

// WithDriver replaces the default TweenDriver.
func WithDriver(d AnimationDriver) Option {
	return func(b *Button) { b.driver = d }
}

// WithEventSink sets the observer for button events.
func WithEventSink(s EventSink) Option {
	return func(b *Button) { b.sink = s }
}

// New validates cfg and returns a collapsed, idle button. Call SetLayout
// before delivering input.
func New(cfg Config, opts ...Option) (*Button, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := &Button{
		cfg:  cfg,
		tilt: IdentityMatrix,
		geometry: Geometry{
			CollapseRadius: cfg.CollapseRadius,
			ExpandRadius:   cfg.ExpandRadius,
		},
		dirty: true,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.driver == nil {
		fn := cfg.Easing
		if fn == nil {
			fn = ease.InOutSine
		}
		b.driver = NewTweenDriver(fn)
	}
	return b, nil
}

// Config returns the button's configuration.
func (b *Button) Config() Config { return b.cfg }

// SetEventSink replaces the event observer. Pass nil to stop emitting.
func (b *Button) SetEventSink(s EventSink) { b.sink = s }

// SetLayout recomputes the geometry for an allotted area of width x height.
// The circle is centered horizontally on the bottom edge of the content area.
func (b *Button) SetLayout(width, height float64) {
	p := b.cfg.Padding
	w := math.Max(0, width-p.Left-p.Right)
	h := math.Max(0, height-p.Top-p.Bottom)
	if w == 0 || h == 0 {
		logger.Warn("circlebutton: layout has no content area", "width", width, "height", height)
	}
	b.geometry.CenterX = p.Left + w/2
	b.geometry.CenterY = p.Top + h
	b.refSize = math.Max(w, h)
	b.dirty = true
}

// Geometry returns the current circle geometry.
func (b *Button) Geometry() Geometry { return b.geometry }

// ReferenceSize returns the size at which the tilt reaches its maximum.
func (b *Button) ReferenceSize() float64 { return b.refSize }

// Progress returns the current expand progress in [0, 1].
func (b *Button) Progress() float64 { return b.progress.Progress() }

// Radius returns the circle radius at the current progress.
func (b *Button) Radius() float64 { return Radius(b.geometry, b.progress.Progress()) }

// State returns the gesture state.
func (b *Button) State() State { return b.state }

// Direction returns the direction of the running animation.
func (b *Button) Direction() Direction { return b.direction }

// AnimationID returns the id of the current animation, or 0 if none ran yet.
func (b *Button) AnimationID() AnimationID { return b.animID }

// Dragged reports whether the pointer has moved since the press.
func (b *Button) Dragged() bool { return b.dragged }

// LastPointer returns the last pointer position seen while pressed.
func (b *Button) LastPointer() Vec2 { return Vec2{b.lastX, b.lastY} }

// Tilt returns the transform applied when drawing: the last drag tilt while
// dragging, identity otherwise.
func (b *Button) Tilt() Matrix {
	if !b.dragged {
		return IdentityMatrix
	}
	return b.tilt
}

// NeedsRedraw reports whether anything visible changed since the last Draw.
func (b *Button) NeedsRedraw() bool { return b.dirty }

func (b *Button) pressed() bool {
	return b.state == StatePressedInside || b.state == StateDragging
}

// PointerDown handles a press. It returns false, leaving the event to the
// container, when the press misses the circle at its current radius.
func (b *Button) PointerDown(x, y float64) bool {
	if b.pressed() {
		return true
	}
	if !IsInside(x, y, b.geometry, b.progress.Progress()) {
		return false
	}
	b.lastX, b.lastY = x, y
	b.tilt = IdentityMatrix
	b.setState(StatePressedInside)
	b.startAnimation(DirectionExpanding)
	b.emit(Event{Type: EventExpandStart, X: x, Y: y})
	return true
}

// PointerMove updates the tilt while the button is held. Progress is not
// affected.
func (b *Button) PointerMove(x, y float64) bool {
	if !b.pressed() {
		return false
	}
	b.lastX, b.lastY = x, y
	b.dragged = true
	b.setState(StateDragging)
	b.tilt = ComputeTiltWithCamera(x, y, b.geometry, b.refSize, b.cfg.CameraDistance)
	b.dirty = true

	rx, ry := TiltAngles(x, y, b.geometry, b.refSize)
	b.emit(Event{Type: EventTilt, X: x, Y: y, RotateX: rx, RotateY: ry})
	return true
}

// PointerUp releases the button and starts collapsing.
func (b *Button) PointerUp(x, y float64) bool {
	return b.release(x, y, false)
}

// PointerCancel behaves like PointerUp.
func (b *Button) PointerCancel(x, y float64) bool {
	return b.release(x, y, true)
}

func (b *Button) release(x, y float64, cancelled bool) bool {
	if !b.pressed() {
		return false
	}
	b.lastX, b.lastY = x, y
	b.dragged = false
	b.tilt = IdentityMatrix
	b.setState(StateReleasing)
	b.startAnimation(DirectionCollapsing)
	b.emit(Event{Type: EventCollapseStart, X: x, Y: y, Cancelled: cancelled})
	return true
}

// startAnimation supersedes the running animation with a new one seeded at
// the current progress.
func (b *Button) startAnimation(dir Direction) {
	from := b.progress.Progress()
	switch dir {
	case DirectionExpanding:
		b.progress.StartExpand(from)
	case DirectionCollapsing:
		b.progress.StartCollapse(from)
	}
	b.nextID++
	b.animID = b.nextID
	b.direction = dir
	logger.Debug("circlebutton: animation start",
		slog.String("direction", dir.String()),
		slog.Float64("from", from),
		slog.Uint64("id", uint64(b.animID)))
	b.driver.Start(b.animID, b.cfg.Duration, b)
}

// Tick applies an interpolation fraction for animation id. Ticks for
// superseded animations are ignored.
func (b *Button) Tick(id AnimationID, fraction float64) {
	if id == 0 || id != b.animID {
		return
	}
	fraction = clamp01(fraction)
	switch b.direction {
	case DirectionExpanding:
		b.progress.StepExpand(fraction)
		b.dirty = true
		if fraction == 1 {
			b.direction = DirectionIdle
			b.emit(Event{Type: EventExpanded, X: b.lastX, Y: b.lastY})
		}
	case DirectionCollapsing:
		b.progress.StepCollapse(fraction)
		b.dirty = true
		if fraction == 1 {
			b.direction = DirectionIdle
			if b.state == StateReleasing {
				b.setState(StateIdle)
			}
			b.emit(Event{Type: EventIdle})
		}
	}
}

// Update advances the button's animation driver by dt seconds.
func (b *Button) Update(dt float32) {
	b.driver.Update(dt)
}

// Draw renders the circle and, when set, the label above it.
func (b *Button) Draw(c Canvas) {
	b.dirty = false
	m := b.Tilt()
	p := b.progress.Progress()
	r := Radius(b.geometry, p)
	cx, cy := b.geometry.CenterX, b.geometry.CenterY

	c.FillCircle(cx, cy, r, m, b.cfg.ButtonColor)

	if b.cfg.Text == "" {
		return
	}
	size := b.cfg.TextSize * p
	if size <= 0 {
		return
	}
	fm := c.FontMetrics(size)
	c.FillText(b.cfg.Text, cx, textBaseline(cy, r, fm), size, m, b.cfg.TextColor)
}

func (b *Button) setState(s State) {
	if b.state == s {
		return
	}
	logger.Debug("circlebutton: state",
		slog.String("from", b.state.String()),
		slog.String("to", s.String()))
	b.state = s
}

func (b *Button) emit(e Event) {
	if b.sink == nil {
		return
	}
	e.State = b.state
	e.Progress = b.progress.Progress()
	b.sink.Emit(e)
}
