// Package object defines the game entities, their physics bodies and how they move.
package object

import (
	"math"

	"github.com/tomz197/shoot/internal/physics"
	"github.com/tsujio/game-util/mathutil"
)

// Kind tags what an entity is. Contact resolution switches on it.
type Kind int

const (
	KindPlayer Kind = iota
	KindBullet
	KindEnemy
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBullet:
		return "bullet"
	case KindEnemy:
		return "enemy"
	case KindWall:
		return "wall"
	}
	return "unknown"
}

// Screen represents the playfield dimensions.
type Screen struct {
	Width  int
	Height int
}

// NewScreen creates a Screen.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height}
}

// WrapPosition wraps x and y coordinates around screen boundaries into [0, size).
func (s Screen) WrapPosition(x, y *float64) {
	w := float64(s.Width)
	h := float64(s.Height)

	if w > 0 {
		*x = math.Mod(*x, w)
		if *x < 0 {
			*x += w
		}
		if *x >= w { // -tiny + size rounds to size
			*x = 0
		}
	}
	if h > 0 {
		*y = math.Mod(*y, h)
		if *y < 0 {
			*y += h
		}
		if *y >= h { // -tiny + size rounds to size
			*y = 0
		}
	}
}

// Bounds returns the screen as a box.
func (s Screen) Bounds() physics.Rect {
	return physics.Rect{
		X:  float64(s.Width) / 2,
		Y:  float64(s.Height) / 2,
		HW: float64(s.Width) / 2,
		HH: float64(s.Height) / 2,
	}
}

// Entity is anything living in a session: the player, bullets, enemies and the
// world edge. Positions use a y-up coordinate system with the origin at the
// bottom-left corner of the screen.
type Entity struct {
	ID      uint64
	Kind    Kind
	Pos     *mathutil.Vector2D
	Vel     *mathutil.Vector2D
	HW, HH  float64 // Half extents
	Body    physics.Body
	Force   float64 // Vertical force for the next step; assigned, not accumulated
	Damping float64 // Fraction of velocity lost per second
	Move    *Move   // Scripted linear motion; nil for force-driven bodies

	prev      *mathutil.Vector2D
	destroyed bool
}

// MarkDestroyed marks the entity for removal.
func (e *Entity) MarkDestroyed() {
	e.destroyed = true
}

// IsDestroyed returns true if the entity is marked for removal.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// Rect returns the entity's current bounds.
func (e *Entity) Rect() physics.Rect {
	return physics.Rect{X: e.Pos.X, Y: e.Pos.Y, HW: e.HW, HH: e.HH}
}

// Collider returns the entity's state for a contact pass.
func (e *Entity) Collider() physics.Collider {
	c := physics.Collider{ID: e.ID, Bounds: e.Rect(), PrevX: e.Pos.X, PrevY: e.Pos.Y, Body: e.Body}
	if e.prev != nil {
		c.PrevX, c.PrevY = e.prev.X, e.prev.Y
	}
	return c
}

// Step advances the entity by dt seconds. Scripted moves run first; dynamic
// bodies integrate their force, which is then cleared, and are kept inside
// edge when their collision mask includes the wall. Returns true when a
// scripted move finished this step.
func (e *Entity) Step(dt float64, edge *Entity) (arrived bool) {
	e.prev = e.Pos.Clone()

	if e.Move != nil {
		pos, done := e.Move.Advance(dt)
		e.Pos = pos
		if done {
			e.Move = nil
			return true
		}
		return false
	}

	if !e.Body.Dynamic || e.Body.Mass <= 0 {
		return false
	}

	e.Vel.Y += e.Force / e.Body.Mass * dt
	e.Force = 0
	if e.Damping > 0 {
		e.Vel = e.Vel.Mul(math.Max(0, 1-e.Damping*dt))
	}
	e.Pos = e.Pos.Add(e.Vel.Mul(dt))

	if edge != nil && physics.Collides(e.Body, edge.Body) {
		e.confine(edge.Rect())
	}
	return false
}

// confine keeps the entity inside r and stops motion into the edge.
func (e *Entity) confine(r physics.Rect) {
	minX, maxX := r.X-r.HW+e.HW, r.X+r.HW-e.HW
	minY, maxY := r.Y-r.HH+e.HH, r.Y+r.HH-e.HH
	if e.Pos.X < minX {
		e.Pos.X, e.Vel.X = minX, 0
	} else if e.Pos.X > maxX {
		e.Pos.X, e.Vel.X = maxX, 0
	}
	if e.Pos.Y < minY {
		e.Pos.Y, e.Vel.Y = minY, 0
	} else if e.Pos.Y > maxY {
		e.Pos.Y, e.Vel.Y = maxY, 0
	}
}
