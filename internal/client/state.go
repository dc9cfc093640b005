package client

import (
	"time"

	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/loop"
)

// ClientState holds per-connection presentation state.
type ClientState struct {
	Input     input.Input
	Running   bool
	Scene     loop.Scene
	ScoreText string

	prevScene  loop.Scene
	transition loop.Transition
	elapsed    time.Duration // Time into the current transition
	delta      time.Duration
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{Running: true, Scene: loop.SceneGame, ScoreText: "Score: 0"}
}

// flipScale returns the horizontal scale for the current frame of a flip
// transition: 1 when idle, shrinking to 0 at the midpoint and growing back.
func (s *ClientState) flipScale() float64 {
	return s.transition.FlipScale(s.elapsed)
}

// advance moves the transition clock forward.
func (s *ClientState) advance(dt time.Duration) {
	if s.transition.Duration > 0 && s.elapsed < s.transition.Duration {
		s.elapsed += dt
	}
}
