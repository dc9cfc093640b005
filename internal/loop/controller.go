package loop

import (
	"math"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/object"
)

// PlayerController turns tilt readings into vertical force on the player.
// The first reading it sees becomes the neutral baseline for the session.
type PlayerController struct {
	DeadZone float64
	Scale    float64

	baseline   float64
	calibrated bool
}

// NewPlayerController creates a controller with the default dead zone and scale.
func NewPlayerController() *PlayerController {
	return &PlayerController{DeadZone: config.TiltDeadZone, Scale: config.TiltForceScale}
}

// Baseline returns the calibration baseline and whether it has been captured.
func (c *PlayerController) Baseline() (float64, bool) {
	return c.baseline, c.calibrated
}

// Force returns the vertical force for a reading, calibrating on first use.
// Readings within the dead zone of the baseline give exactly zero.
func (c *PlayerController) Force(s input.Sample) float64 {
	if !c.calibrated {
		c.baseline = s.GravityZ
		c.calibrated = true
	}
	if math.Abs(s.GravityZ-c.baseline) <= c.DeadZone {
		return 0
	}
	return -s.GravityZ*c.Scale + c.baseline*c.Scale
}

// Apply reads the latest sample from src and assigns the player's force for
// this frame. Without a sample it does nothing.
func (c *PlayerController) Apply(src MotionSource, player *object.Entity) {
	if src == nil || player == nil || player.IsDestroyed() {
		return
	}
	s, ok := src.Latest()
	if !ok {
		return
	}
	player.Force = c.Force(s)
}
