package object

import "github.com/tsujio/game-util/mathutil"

// Move is a linear move action from one point to another over a fixed duration.
type Move struct {
	From     *mathutil.Vector2D
	To       *mathutil.Vector2D
	Duration float64 // Seconds
	Elapsed  float64
}

// NewMove creates a move action.
func NewMove(from, to *mathutil.Vector2D, duration float64) *Move {
	return &Move{From: from.Clone(), To: to.Clone(), Duration: duration}
}

// Advance moves the action forward by dt and returns the new position and
// whether the destination was reached.
func (m *Move) Advance(dt float64) (*mathutil.Vector2D, bool) {
	m.Elapsed += dt
	return m.At(m.Elapsed), m.Done()
}

// At returns the position t seconds after the move started.
func (m *Move) At(t float64) *mathutil.Vector2D {
	if m.Duration <= 0 || t >= m.Duration {
		return m.To.Clone()
	}
	if t <= 0 {
		return m.From.Clone()
	}
	return m.From.Add(m.To.Sub(m.From).Mul(t / m.Duration))
}

// Done reports whether the destination was reached.
func (m *Move) Done() bool {
	return m.Elapsed >= m.Duration
}
