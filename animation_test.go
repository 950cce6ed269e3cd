package circlebutton

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

type tickLog struct {
	ids       []AnimationID
	fractions []float64
}

func (l *tickLog) Tick(id AnimationID, f float64) {
	l.ids = append(l.ids, id)
	l.fractions = append(l.fractions, f)
}

func TestTweenDriverLinear(t *testing.T) {
	d := NewTweenDriver(nil)
	assert.True(t, d.Done, "idle driver")
	d.Update(0.1) // no-op while idle

	var log tickLog
	d.Start(7, 200*time.Millisecond, &log)
	assert.Equal(t, AnimationID(7), d.Running())

	d.Update(0.05)
	d.Update(0.05)
	d.Update(0.2)
	assert.True(t, d.Done)
	assert.Equal(t, AnimationID(0), d.Running())

	assert.Equal(t, []AnimationID{7, 7, 7}, log.ids)
	assert.InDelta(t, 0.25, log.fractions[0], 1e-6)
	assert.InDelta(t, 0.5, log.fractions[1], 1e-6)
	assert.Equal(t, 1.0, log.fractions[2], "final tick is exactly 1")

	d.Update(0.1)
	assert.Len(t, log.ids, 3, "no ticks after finishing")
}

func TestTweenDriverZeroDuration(t *testing.T) {
	d := NewTweenDriver(ease.Linear)
	var log tickLog
	d.Start(1, 0, &log)
	d.Update(1.0 / 60)
	assert.Equal(t, []float64{1}, log.fractions)
	assert.True(t, d.Done)
}

func TestTweenDriverSupersede(t *testing.T) {
	d := NewTweenDriver(ease.Linear)
	var first, second tickLog
	d.Start(1, 200*time.Millisecond, &first)
	d.Update(0.1)
	d.Start(2, 200*time.Millisecond, &second)
	d.Update(0.1)

	assert.Len(t, first.ids, 1)
	assert.Equal(t, []AnimationID{2}, second.ids)
	assert.InDelta(t, 0.5, second.fractions[0], 1e-6, "new run starts from 0")
}

func TestTweenDriverEasing(t *testing.T) {
	d := NewTweenDriver(ease.InOutSine)
	var log tickLog
	d.Start(1, time.Second, &log)
	d.Update(0.25)
	// Accelerate-decelerate: slow start.
	assert.Less(t, log.fractions[0], 0.25)
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"linear", "inOutSine", "inQuad", "outQuad", "inOutQuad", "outCubic", "outBack"} {
		fn, ok := EasingByName(name)
		if !ok || fn == nil {
			t.Errorf("EasingByName(%q) not found", name)
		}
	}
	if _, ok := EasingByName("bounce"); ok {
		t.Error("EasingByName(bounce) should not be registered")
	}
}
