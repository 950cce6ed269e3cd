package circlebutton

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Ticker receives the interpolation fraction of a running animation.
// Ticks for an id other than the current animation are ignored.
type Ticker interface {
	Tick(id AnimationID, fraction float64)
}

// AnimationDriver is the frame clock behind expand and collapse animations.
// Start supersedes whatever the driver was running; Update is called once per
// frame with the elapsed time in seconds.
type AnimationDriver interface {
	Start(id AnimationID, duration time.Duration, target Ticker)
	Update(dt float32)
}

// TweenDriver drives one animation at a time with a gween tween running from
// 0 to 1. The tween's easing shapes the fraction delivered to the target.
//
// There is no global animation manager; the owner calls Update itself.
type TweenDriver struct {
	tween  *gween.Tween
	easing ease.TweenFunc
	id     AnimationID
	target Ticker
	Done   bool
}

// NewTweenDriver creates an idle driver. A nil easing means ease.Linear.
func NewTweenDriver(fn ease.TweenFunc) *TweenDriver {
	if fn == nil {
		fn = ease.Linear
	}
	return &TweenDriver{easing: fn, Done: true}
}

// Start replaces the running animation. The previous target receives no
// further ticks.
func (d *TweenDriver) Start(id AnimationID, duration time.Duration, target Ticker) {
	if duration < 0 {
		duration = 0
	}
	d.tween = gween.New(0, 1, float32(duration.Seconds()), d.easing)
	d.id = id
	d.target = target
	d.Done = false
}

// Update advances the tween by dt seconds and delivers the fraction. The
// final tick of a run always carries exactly 1.
func (d *TweenDriver) Update(dt float32) {
	if d.Done || d.tween == nil {
		return
	}
	val, finished := d.tween.Update(dt)
	if finished {
		val = 1
	}
	d.Done = finished
	if d.target != nil {
		d.target.Tick(d.id, float64(val))
	}
}

// Running returns the id of the animation in flight, or 0.
func (d *TweenDriver) Running() AnimationID {
	if d.Done {
		return 0
	}
	return d.id
}

// easings maps config names to gween easing functions. The default,
// inOutSine, is the accelerate-decelerate curve.
var easings = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inOutSine": ease.InOutSine,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"outCubic":  ease.OutCubic,
	"outBack":   ease.OutBack,
}

// EasingByName returns the easing registered under name.
func EasingByName(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}
