package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tsujio/game-util/mathutil"
)

// tapReader collects taps: left clicks, screen touches and the gamepad's
// bottom face button, all reported when they are released.
type tapReader struct {
	touchIDs   []ebiten.TouchID
	gamepadIDs []ebiten.GamepadID
}

// appendTaps appends the layout positions of pointer taps that ended this tick.
func (t *tapReader) appendTaps(dst []*mathutil.Vector2D) []*mathutil.Vector2D {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		dst = append(dst, mathutil.NewVector2D(float64(x), float64(y)))
	}

	t.touchIDs = inpututil.AppendJustReleasedTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		dst = append(dst, mathutil.NewVector2D(float64(x), float64(y)))
	}
	return dst
}

// buttonTapped reports whether a keyboard or gamepad fire button was pressed.
func (t *tapReader) buttonTapped() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return true
	}
	t.gamepadIDs = ebiten.AppendGamepadIDs(t.gamepadIDs[:0])
	for _, id := range t.gamepadIDs {
		if inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightBottom) {
			return true
		}
	}
	return false
}
