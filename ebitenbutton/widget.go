package ebitenbutton

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/circlebutton"
)

// pointerSource is the device that owns the current gesture.
type pointerSource uint8

const (
	sourceNone pointerSource = iota
	sourceMouse
	sourceTouch
)

// pointerState tracks the single pointer that pressed the button. Other
// pointers are ignored until it is released.
type pointerState struct {
	source  pointerSource
	touchID ebiten.TouchID
	lastX   float64
	lastY   float64
}

// Widget runs a Button inside an Ebitengine game. It implements ebiten.Game
// and fills the whole screen.
type Widget struct {
	Button     *circlebutton.Button
	ClearColor circlebutton.Color
	ShowFPS    bool

	canvas  *Canvas
	input   inputSource
	pointer pointerState
	touches []ebiten.TouchID
	width   int
	height  int
}

var _ ebiten.Game = (*Widget)(nil)

// NewWidget wraps b. Text is drawn with the embedded Go Regular font.
func NewWidget(b *circlebutton.Button) (*Widget, error) {
	src, err := DefaultFontSource()
	if err != nil {
		return nil, err
	}
	return &Widget{
		Button:     b,
		ClearColor: circlebutton.Color{R: 1, G: 1, B: 1, A: 1},
		canvas:     NewCanvas(src),
		input:      ebitenInput{},
	}, nil
}

// Update feeds this tick's input to the button and advances its animation.
func (w *Widget) Update() error {
	if !w.input.IsFocused() {
		w.CancelGesture()
	} else {
		w.processMouse()
		w.processTouches()
	}
	w.Button.Update(float32(1.0 / float64(w.input.TPS())))
	return nil
}

// Draw clears the screen and draws the button.
func (w *Widget) Draw(screen *ebiten.Image) {
	screen.Fill(w.ClearColor.RGBA())
	w.canvas.SetTarget(screen)
	w.Button.Draw(w.canvas)
	if w.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout lays the button out over the whole window.
func (w *Widget) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.Button.SetLayout(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// processMouse handles the left mouse button.
func (w *Widget) processMouse() {
	mx, my := w.input.CursorPosition()
	x, y := float64(mx), float64(my)

	switch w.pointer.source {
	case sourceNone:
		if w.input.LeftJustPressed() && w.Button.PointerDown(x, y) {
			w.pointer = pointerState{source: sourceMouse, lastX: x, lastY: y}
		}
	case sourceMouse:
		if w.input.LeftJustReleased() || !w.input.LeftPressed() {
			w.Button.PointerUp(x, y)
			w.pointer = pointerState{}
			return
		}
		w.move(x, y)
	}
}

// processTouches handles the first touch that lands on the button.
func (w *Widget) processTouches() {
	switch w.pointer.source {
	case sourceNone:
		w.touches = w.input.AppendJustPressedTouchIDs(w.touches[:0])
		for _, id := range w.touches {
			tx, ty := w.input.TouchPosition(id)
			x, y := float64(tx), float64(ty)
			if w.Button.PointerDown(x, y) {
				w.pointer = pointerState{source: sourceTouch, touchID: id, lastX: x, lastY: y}
				return
			}
		}
	case sourceTouch:
		id := w.pointer.touchID
		if w.input.IsTouchJustReleased(id) {
			tx, ty := w.input.TouchPositionInPreviousTick(id)
			w.Button.PointerUp(float64(tx), float64(ty))
			w.pointer = pointerState{}
			return
		}
		tx, ty := w.input.TouchPosition(id)
		w.move(float64(tx), float64(ty))
	}
}

func (w *Widget) move(x, y float64) {
	if x == w.pointer.lastX && y == w.pointer.lastY {
		return
	}
	w.pointer.lastX, w.pointer.lastY = x, y
	w.Button.PointerMove(x, y)
}

// CancelGesture cancels the gesture in progress, if any. Update calls it
// when the window loses focus.
func (w *Widget) CancelGesture() {
	if w.pointer.source == sourceNone {
		return
	}
	w.Button.PointerCancel(w.pointer.lastX, w.pointer.lastY)
	w.pointer = pointerState{}
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Background is the clear color; the zero value means white.
	Background color.Color
}

// Run opens a window and runs w until it is closed.
func Run(w *Widget, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("ebitenbutton: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w.ShowFPS = cfg.ShowFPS
	if cfg.Background != nil {
		r, g, b, a := cfg.Background.RGBA()
		if a > 0 {
			// color.Color is premultiplied; Color is not.
			w.ClearColor = circlebutton.Color{
				R: float64(r) / float64(a), G: float64(g) / float64(a),
				B: float64(b) / float64(a), A: float64(a) / 0xffff,
			}
		}
	}
	circlebutton.Logger().Info("ebitenbutton: starting", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("ebitenbutton: run: %w", err)
	}
	return nil
}
