package circlebutton

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
)

// manualDriver records Start calls; tests deliver ticks themselves.
type manualDriver struct {
	starts []AnimationID
	last   time.Duration
}

func (d *manualDriver) Start(id AnimationID, duration time.Duration, _ Ticker) {
	d.starts = append(d.starts, id)
	d.last = duration
}

func (d *manualDriver) Update(float32) {}

type eventLog []Event

func (l *eventLog) Emit(e Event) { *l = append(*l, e) }

func (l eventLog) types() []EventType {
	out := make([]EventType, len(l))
	for i, e := range l {
		out[i] = e.Type
	}
	return out
}

type textCall struct {
	s          string
	x, y, size float64
}

type circleCall struct {
	cx, cy, r float64
	m         Matrix
}

// recordingCanvas reports Ascent = 0.8*size and Descent = 0.2*size.
type recordingCanvas struct {
	circles []circleCall
	texts   []textCall
}

func (c *recordingCanvas) FillCircle(cx, cy, r float64, m Matrix, _ Color) {
	c.circles = append(c.circles, circleCall{cx, cy, r, m})
}

func (c *recordingCanvas) FillText(s string, x, y, size float64, _ Matrix, _ Color) {
	c.texts = append(c.texts, textCall{s, x, y, size})
}

func (c *recordingCanvas) FontMetrics(size float64) FontMetrics {
	return FontMetrics{Ascent: 0.8 * size, Descent: 0.2 * size}
}

// newTestButton returns a 40/120 button laid out in 200x300, centered at
// (100, 300), with a manual driver.
func newTestButton(t *testing.T, opts ...Option) (*Button, *manualDriver) {
	t.Helper()
	d := &manualDriver{}
	b, err := New(DefaultConfig(1, 1), append([]Option{WithDriver(d)}, opts...)...)
	require.NoError(t, err)
	b.SetLayout(200, 300)
	return b, d
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New(Config{}) error = %v, want ErrInvalidConfig", err)
	}
}

func TestNewDefaults(t *testing.T) {
	b, err := New(DefaultConfig(1, 1))
	require.NoError(t, err)
	assert.Equal(t, StateIdle, b.State())
	assert.Equal(t, DirectionIdle, b.Direction())
	assert.Equal(t, 0.0, b.Progress())
	assert.Equal(t, AnimationID(0), b.AnimationID())
	assert.True(t, b.Tilt().IsIdentity())
	assert.True(t, b.NeedsRedraw())
}

func TestSetLayout(t *testing.T) {
	b, _ := newTestButton(t)
	g := b.Geometry()
	assert.Equal(t, 100.0, g.CenterX)
	assert.Equal(t, 300.0, g.CenterY)
	assert.Equal(t, 40.0, g.CollapseRadius)
	assert.Equal(t, 120.0, g.ExpandRadius)
	assert.Equal(t, 300.0, b.ReferenceSize())
}

func TestSetLayoutPadding(t *testing.T) {
	cfg := DefaultConfig(1, 1)
	cfg.Padding = Insets{Left: 10, Top: 20, Right: 30, Bottom: 40}
	b, err := New(cfg)
	require.NoError(t, err)

	b.SetLayout(240, 400)
	g := b.Geometry()
	assert.Equal(t, 110.0, g.CenterX)
	assert.Equal(t, 360.0, g.CenterY)
	assert.Equal(t, 340.0, b.ReferenceSize())
}

func TestPressExpands(t *testing.T) {
	b, d := newTestButton(t)

	require.True(t, b.PointerDown(100, 300))
	assert.Equal(t, StatePressedInside, b.State())
	assert.Equal(t, DirectionExpanding, b.Direction())
	assert.Equal(t, []AnimationID{1}, d.starts)
	assert.Equal(t, DefaultDuration, d.last)

	b.Tick(1, 0.5)
	assertNear(t, "progress", b.Progress(), 0.5)
	assertNear(t, "radius", b.Radius(), 80)

	b.Tick(1, 1)
	assert.Equal(t, 1.0, b.Progress())
	assert.Equal(t, 120.0, b.Radius())
	assert.Equal(t, DirectionIdle, b.Direction())
	assert.Equal(t, StatePressedInside, b.State(), "still held after expanding")
}

func TestPressOutsideIgnored(t *testing.T) {
	b, d := newTestButton(t)

	assert.False(t, b.PointerDown(100, 200))
	assert.Equal(t, StateIdle, b.State())
	assert.Empty(t, d.starts)

	assert.False(t, b.PointerMove(100, 250), "move without press")
	assert.False(t, b.PointerUp(100, 250), "release without press")
	assert.False(t, b.PointerCancel(100, 250), "cancel without press")
}

func TestSecondPressWhileHeld(t *testing.T) {
	b, d := newTestButton(t)
	require.True(t, b.PointerDown(100, 300))
	assert.True(t, b.PointerDown(500, 500))
	assert.Equal(t, []AnimationID{1}, d.starts, "no new animation")
}

func TestReleaseCollapsesFromInterruption(t *testing.T) {
	b, d := newTestButton(t)
	require.True(t, b.PointerDown(100, 300))
	b.Tick(1, 0.7)
	assertNear(t, "progress", b.Progress(), 0.7)

	require.True(t, b.PointerUp(100, 300))
	assert.Equal(t, StateReleasing, b.State())
	assert.Equal(t, DirectionCollapsing, b.Direction())
	assert.Equal(t, []AnimationID{1, 2}, d.starts)

	b.Tick(2, 0)
	assertNear(t, "collapse start", b.Progress(), 0.7)
	b.Tick(2, 0.5)
	assertNear(t, "collapse mid", b.Progress(), 0.35)
	b.Tick(2, 1)
	assert.Equal(t, 0.0, b.Progress())
	assert.Equal(t, StateIdle, b.State())
	assert.Equal(t, DirectionIdle, b.Direction())
}

func TestStaleTickIgnored(t *testing.T) {
	b, _ := newTestButton(t)
	require.True(t, b.PointerDown(100, 300))
	b.Tick(1, 0.4)
	require.True(t, b.PointerUp(100, 300))

	b.Tick(1, 0.9)
	assertNear(t, "after stale tick", b.Progress(), 0.4)
	b.Tick(0, 0.9)
	assertNear(t, "after zero id", b.Progress(), 0.4)
	b.Tick(99, 0.9)
	assertNear(t, "after future id", b.Progress(), 0.4)
	assert.Equal(t, DirectionCollapsing, b.Direction())
}

func TestPressDuringCollapse(t *testing.T) {
	b, _ := newTestButton(t)
	require.True(t, b.PointerDown(100, 300))
	b.Tick(1, 1)
	require.True(t, b.PointerUp(100, 300))
	b.Tick(2, 0.5)
	require.InDelta(t, 80, b.Radius(), 1e-9)

	// Hit test uses the current radius.
	assert.False(t, b.PointerDown(100, 200), "100px away misses an 80px circle")
	require.True(t, b.PointerDown(100, 220), "80px away hits the edge")
	assert.Equal(t, AnimationID(3), b.AnimationID())
	assert.Equal(t, DirectionExpanding, b.Direction())

	b.Tick(3, 0)
	assertNear(t, "re-expand seed", b.Progress(), 0.5)
	b.Tick(2, 0.9)
	assertNear(t, "collapse tick after re-press", b.Progress(), 0.5)
	b.Tick(3, 0.5)
	assertNear(t, "re-expand mid", b.Progress(), 0.75)
}

func TestMoveTilts(t *testing.T) {
	b, _ := newTestButton(t)
	require.True(t, b.PointerDown(100, 300))
	assert.True(t, b.Tilt().IsIdentity(), "no tilt before moving")

	progress := b.Progress()
	require.True(t, b.PointerMove(100, 250))
	assert.Equal(t, StateDragging, b.State())
	assert.True(t, b.Dragged())
	assert.Equal(t, Vec2{100, 250}, b.LastPointer())
	assert.Equal(t, progress, b.Progress(), "move does not change progress")
	assertMatrix(t, "tilt", b.Tilt(), ComputeTilt(100, 250, b.Geometry(), 300))
	assert.False(t, b.Tilt().IsIdentity())

	require.True(t, b.PointerUp(100, 250))
	assert.False(t, b.Dragged())
	assert.True(t, b.Tilt().IsIdentity(), "tilt resets on release")
}

func TestMoveAtCenterIsIdentity(t *testing.T) {
	b, _ := newTestButton(t)
	require.True(t, b.PointerDown(100, 280))
	require.True(t, b.PointerMove(100, 300))
	assert.True(t, b.Tilt().IsIdentity())
}

func TestCancelBehavesLikeRelease(t *testing.T) {
	var log eventLog
	b, d := newTestButton(t, WithEventSink(&log))
	require.True(t, b.PointerDown(100, 300))
	require.True(t, b.PointerMove(120, 280))
	require.True(t, b.PointerCancel(120, 280))

	assert.Equal(t, StateReleasing, b.State())
	assert.True(t, b.Tilt().IsIdentity())
	assert.Equal(t, []AnimationID{1, 2}, d.starts)
	require.NotEmpty(t, log)
	last := log[len(log)-1]
	assert.Equal(t, EventCollapseStart, last.Type)
	assert.True(t, last.Cancelled)
}

func TestEventOrderWithTweenDriver(t *testing.T) {
	var log eventLog
	cfg := DefaultConfig(1, 1)
	cfg.Easing = ease.Linear
	b, err := New(cfg, WithEventSink(&log))
	require.NoError(t, err)
	b.SetLayout(200, 300)

	require.True(t, b.PointerDown(100, 300))
	b.Update(0.1)
	assert.InDelta(t, 0.5, b.Progress(), 1e-6)
	b.Update(0.15)
	assert.Equal(t, 1.0, b.Progress())

	require.True(t, b.PointerMove(100, 250))
	require.True(t, b.PointerUp(100, 250))
	b.Update(0.15)
	assert.InDelta(t, 0.25, b.Progress(), 1e-6)
	b.Update(0.15)
	assert.Equal(t, 0.0, b.Progress())
	assert.Equal(t, StateIdle, b.State())

	assert.Equal(t, []EventType{
		EventExpandStart, EventExpanded, EventTilt, EventCollapseStart, EventIdle,
	}, log.types())

	tilt := log[2]
	assertNear(t, "rotateX", tilt.RotateX, 7.5)
	assertNear(t, "rotateY", tilt.RotateY, 0)
	assert.Equal(t, StateDragging, tilt.State)
	assert.False(t, log[3].Cancelled)
}

func TestDrawCollapsedHasNoText(t *testing.T) {
	cfg := DefaultConfig(1, 1)
	cfg.Text = "Hold"
	b, err := New(cfg, WithDriver(&manualDriver{}))
	require.NoError(t, err)
	b.SetLayout(200, 300)

	var c recordingCanvas
	b.Draw(&c)
	require.Len(t, c.circles, 1)
	assert.Equal(t, circleCall{100, 300, 40, IdentityMatrix}, c.circles[0])
	assert.Empty(t, c.texts)
	assert.False(t, b.NeedsRedraw())
}

func TestDrawExpandedText(t *testing.T) {
	cfg := DefaultConfig(1, 1)
	cfg.Text = "Hold"
	b, err := New(cfg, WithDriver(&manualDriver{}))
	require.NoError(t, err)
	b.SetLayout(200, 300)
	require.True(t, b.PointerDown(100, 300))
	b.Tick(1, 1)
	assert.True(t, b.NeedsRedraw())

	var c recordingCanvas
	b.Draw(&c)
	require.Len(t, c.circles, 1)
	assert.Equal(t, 120.0, c.circles[0].r)
	require.Len(t, c.texts, 1)
	txt := c.texts[0]
	assert.Equal(t, "Hold", txt.s)
	assert.Equal(t, 100.0, txt.x)
	assert.Equal(t, 30.0, txt.size)
	// 300 - 120 - 30/2 + (24-6)/2
	assertNear(t, "baseline", txt.y, 174)
}

func TestDrawScalesText(t *testing.T) {
	cfg := DefaultConfig(1, 1)
	cfg.Text = "Hold"
	b, err := New(cfg, WithDriver(&manualDriver{}))
	require.NoError(t, err)
	b.SetLayout(200, 300)
	require.True(t, b.PointerDown(100, 300))
	b.Tick(1, 0.5)

	var c recordingCanvas
	b.Draw(&c)
	require.Len(t, c.texts, 1)
	assertNear(t, "size", c.texts[0].size, 15)
	// 300 - 80 - 7.5 + 4.5
	assertNear(t, "baseline", c.texts[0].y, 217)
}

func TestDrawUsesTilt(t *testing.T) {
	b, _ := newTestButton(t)
	require.True(t, b.PointerDown(100, 300))
	require.True(t, b.PointerMove(150, 200))

	var c recordingCanvas
	b.Draw(&c)
	require.Len(t, c.circles, 1)
	assertMatrix(t, "draw matrix", c.circles[0].m, b.Tilt())
	assert.Empty(t, c.texts, "no text configured")
}
