// Package loop runs a game session: frame order, spawning, contact resolution,
// scoring, game over and restart. It has no rendering or platform code; hosts
// drive it with timestamps and taps and read its state back for drawing.
package loop

import (
	"time"

	"github.com/samber/lo"
	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/object"
)

// GameState represents the current session phase.
type GameState int

const (
	GameStateActive   GameState = iota // Gameplay running
	GameStateGameOver                  // Terminal; waiting for a tap to restart
)

func (s GameState) String() string {
	switch s {
	case GameStateActive:
		return "active"
	case GameStateGameOver:
		return "game-over"
	}
	return "unknown"
}

// MotionSource delivers the latest tilt reading. Having no sample is valid.
type MotionSource interface {
	Latest() (input.Sample, bool)
}

// HUD receives the score display string whenever it changes.
type HUD interface {
	SetText(text string)
}

// Scene names a screen a host can present.
type Scene string

const (
	SceneGame     Scene = "game"
	SceneGameOver Scene = "gameOver"
)

// Transition describes how a host animates between scenes.
type Transition struct {
	Name     string
	Duration time.Duration
}

// Progress returns how far elapsed is into the transition, clamped to [0, 1].
// A zero-length transition is always complete.
func (t Transition) Progress(elapsed time.Duration) float64 {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(t.Duration)
}

// FlipScale returns the horizontal scale of a flip at elapsed: 1 at both
// ends, 0 at the midpoint where the outgoing scene is swapped for the new one.
func (t Transition) FlipScale(elapsed time.Duration) float64 {
	p := t.Progress(elapsed)
	if p < 0.5 {
		return 1 - 2*p
	}
	return 2*p - 1
}

// FlipHorizontal is the transition used between gameplay and the game-over screen.
var FlipHorizontal = Transition{Name: config.TransitionName, Duration: config.TransitionDuration}

// Presenter shows scenes. Hosts implement it to run transition animations.
type Presenter interface {
	Present(scene Scene, t Transition)
}

// World owns the live entity set of one session.
type World struct {
	entities []*object.Entity
	byID     map[uint64]*object.Entity
	nextID   uint64
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{byID: make(map[uint64]*object.Entity)}
}

// NextID returns a fresh entity ID.
func (w *World) NextID() uint64 {
	w.nextID++
	return w.nextID
}

// Spawn adds an entity.
func (w *World) Spawn(e *object.Entity) {
	w.entities = append(w.entities, e)
	w.byID[e.ID] = e
}

// Get returns a live entity by ID, or nil if it is gone or marked destroyed.
func (w *World) Get(id uint64) *object.Entity {
	e, ok := w.byID[id]
	if !ok || e.IsDestroyed() {
		return nil
	}
	return e
}

// Remove marks an entity destroyed. It disappears on the next Compact.
func (w *World) Remove(e *object.Entity) {
	e.MarkDestroyed()
}

// Compact discards destroyed entities.
func (w *World) Compact() {
	w.entities = lo.Filter(w.entities, func(e *object.Entity, _ int) bool {
		if e.IsDestroyed() {
			delete(w.byID, e.ID)
			return false
		}
		return true
	})
}

// Entities returns the live entities. The slice must not be modified.
func (w *World) Entities() []*object.Entity {
	return w.entities
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind object.Kind) int {
	return lo.CountBy(w.entities, func(e *object.Entity) bool {
		return e.Kind == kind && !e.IsDestroyed()
	})
}
