package ebitenbutton

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputSource is the per-tick input state the widget polls. ebitenInput
// reads it from Ebitengine; tests substitute their own.
type inputSource interface {
	IsFocused() bool
	TPS() int

	CursorPosition() (int, int)
	LeftJustPressed() bool
	LeftJustReleased() bool
	LeftPressed() bool

	AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID
	TouchPosition(id ebiten.TouchID) (int, int)
	IsTouchJustReleased(id ebiten.TouchID) bool
	TouchPositionInPreviousTick(id ebiten.TouchID) (int, int)
}

type ebitenInput struct{}

var _ inputSource = ebitenInput{}

func (ebitenInput) IsFocused() bool { return ebiten.IsFocused() }
func (ebitenInput) TPS() int        { return ebiten.TPS() }

func (ebitenInput) CursorPosition() (int, int) { return ebiten.CursorPosition() }

func (ebitenInput) LeftJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) LeftJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
}

func (ebitenInput) LeftPressed() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (ebitenInput) AppendJustPressedTouchIDs(ids []ebiten.TouchID) []ebiten.TouchID {
	return inpututil.AppendJustPressedTouchIDs(ids)
}

func (ebitenInput) TouchPosition(id ebiten.TouchID) (int, int) {
	return ebiten.TouchPosition(id)
}

func (ebitenInput) IsTouchJustReleased(id ebiten.TouchID) bool {
	return inpututil.IsTouchJustReleased(id)
}

func (ebitenInput) TouchPositionInPreviousTick(id ebiten.TouchID) (int, int) {
	return inpututil.TouchPositionInPreviousTick(id)
}
