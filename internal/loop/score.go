package loop

import "fmt"

// ScoreTracker counts enemy kills and keeps the HUD in sync.
type ScoreTracker struct {
	score int
	hud   HUD
}

// NewScoreTracker creates a tracker at zero and pushes the initial text to hud.
func NewScoreTracker(hud HUD) *ScoreTracker {
	s := &ScoreTracker{hud: hud}
	s.notify()
	return s
}

// Add increases the score. Negative amounts are ignored so the score never drops.
func (s *ScoreTracker) Add(points int) {
	if points <= 0 {
		return
	}
	s.score += points
	s.notify()
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}

// Text returns the HUD display string.
func (s *ScoreTracker) Text() string {
	return fmt.Sprintf("Score: %d", s.score)
}

func (s *ScoreTracker) notify() {
	if s.hud != nil {
		s.hud.SetText(s.Text())
	}
}
