package object

import "time"

// EnemySpawner fires on a fixed game-time period, starting immediately.
type EnemySpawner struct {
	interval  float64
	untilNext float64
}

// NewEnemySpawner creates a spawner that fires every interval.
func NewEnemySpawner(interval time.Duration) *EnemySpawner {
	return &EnemySpawner{interval: interval.Seconds()}
}

// Update advances the schedule by dt seconds and returns how many spawns are due.
func (s *EnemySpawner) Update(dt float64) int {
	if s.interval <= 0 {
		return 0
	}
	s.untilNext -= dt
	n := 0
	for s.untilNext <= 0 {
		n++
		s.untilNext += s.interval
	}
	return n
}
