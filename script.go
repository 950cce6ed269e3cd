package circlebutton

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

// script is the top-level JSON structure of a script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

type pointerAction uint8

const (
	pointerDown pointerAction = iota
	pointerMove
	pointerUp
	pointerCancel
)

// syntheticPointerEvent is one queued pointer event; one is delivered per frame.
type syntheticPointerEvent struct {
	action pointerAction
	x, y   float64
}

// ScriptRunner plays a JSON script of pointer actions against a Button, one
// step per frame. Call Step once per frame before Button.Update.
//
// Supported actions: press, move, release, cancel (x, y); drag (fromX, fromY,
// toX, toY, frames); wait (frames); snapshot (label); layout (width, height).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	queue     []syntheticPointerEvent
	done      bool

	// OnSnapshot is called for every snapshot step.
	OnSnapshot func(label string)
}

// LoadScript parses a JSON script and returns a runner ready to Step.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "move", "release", "cancel", "drag", "wait", "snapshot", "layout":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// Done reports whether every step ran and every queued event was delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *ScriptRunner) Step(b *Button) {
	if r.done {
		return
	}
	// Drain pending events before advancing.
	if len(r.queue) > 0 {
		r.deliver(b)
		r.checkDone()
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.checkDone()
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		r.enqueue(pointerDown, st.X, st.Y)
	case "move":
		r.enqueue(pointerMove, st.X, st.Y)
	case "release":
		r.enqueue(pointerUp, st.X, st.Y)
	case "cancel":
		r.enqueue(pointerCancel, st.X, st.Y)
	case "drag":
		r.enqueueDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		if r.OnSnapshot != nil {
			r.OnSnapshot(st.Label)
		}
	case "layout":
		b.SetLayout(st.Width, st.Height)
	}

	if len(r.queue) > 0 {
		r.deliver(b)
	}
	r.checkDone()
}

func (r *ScriptRunner) checkDone() {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(r.queue) == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) enqueue(a pointerAction, x, y float64) {
	r.queue = append(r.queue, syntheticPointerEvent{action: a, x: x, y: y})
}

// enqueueDrag queues a press at the start, frames-2 linearly interpolated
// moves, and a release at the end. Minimum frames is 2.
func (r *ScriptRunner) enqueueDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	r.enqueue(pointerDown, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		r.enqueue(pointerMove, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	r.enqueue(pointerUp, toX, toY)
}

func (r *ScriptRunner) deliver(b *Button) {
	evt := r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue = r.queue[:len(r.queue)-1]

	switch evt.action {
	case pointerDown:
		b.PointerDown(evt.x, evt.y)
	case pointerMove:
		b.PointerMove(evt.x, evt.y)
	case pointerUp:
		b.PointerUp(evt.x, evt.y)
	case pointerCancel:
		b.PointerCancel(evt.x, evt.y)
	}
}
