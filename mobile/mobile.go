// Package mobile is the gomobile binding. The native shell forwards the
// accelerometer through SetGravity.
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/tomz197/shoot/internal/ebitenhost"
	"github.com/tomz197/shoot/internal/input"
)

var motion input.MotionSlot

func init() {
	game, err := ebitenhost.NewGame(ebitenhost.Options{Motion: &motion})
	if err != nil {
		panic(err)
	}
	mobile.SetGame(game)
}

// SetGravity stores the z component of the device gravity vector, in g.
//
//export SetGravity
func SetGravity(z float64) {
	motion.Store(input.Sample{GravityZ: z})
}

// Dummy is a dummy exported function.
//
// gomobile doesn't compile a package that doesn't include any exported function.
// Dummy forces gomobile to compile this package.
func Dummy() {}
