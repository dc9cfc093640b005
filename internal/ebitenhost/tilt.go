package ebitenhost

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/samber/lo"
	"github.com/tomz197/shoot/internal/input"
)

// stickDeadZone ignores resting drift on analog sticks.
const stickDeadZone = 0.1

// emulatedTilt feeds arrow keys, W/S or a gamepad's left stick into a motion
// slot for hosts without a real accelerometer.
type emulatedTilt struct {
	slot       *input.MotionSlot
	keys       *input.KeyTilt
	gamepadIDs []ebiten.GamepadID
}

func newEmulatedTilt(slot *input.MotionSlot, keyAmount float64) *emulatedTilt {
	return &emulatedTilt{slot: slot, keys: input.NewKeyTilt(slot, keyAmount)}
}

// update publishes this tick's reading. The stick wins over the keys when it
// is pushed past its dead zone.
func (e *emulatedTilt) update() {
	e.gamepadIDs = ebiten.AppendGamepadIDs(e.gamepadIDs[:0])
	sticks := lo.FilterMap(e.gamepadIDs, func(id ebiten.GamepadID, _ int) (float64, bool) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			return 0, false
		}
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		return v, math.Abs(v) > stickDeadZone
	})
	if len(sticks) > 0 {
		strongest := lo.MaxBy(sticks, func(a, b float64) bool { return math.Abs(a) > math.Abs(b) })
		e.slot.Store(input.Sample{GravityZ: stickTilt(strongest)})
		return
	}

	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	e.keys.Update(up, down)
}

// stickTilt clamps a stick axis to a reading. Stick up is negative, the same
// sign as tilting a phone back.
func stickTilt(axis float64) float64 {
	return math.Max(-1, math.Min(1, axis))
}
