package input

import (
	"math"
	"sync/atomic"
)

// Sample is one motion reading: the z component of the gravity vector in g.
// A device lying flat reads about -1, upright about 0.
type Sample struct {
	GravityZ float64
}

// MotionSlot holds the most recent motion sample. Writers overwrite; the frame
// thread reads once per frame. Last writer wins.
type MotionSlot struct {
	latest atomic.Pointer[Sample]
}

// Store replaces the latest sample. Non-finite readings are dropped.
func (m *MotionSlot) Store(s Sample) bool {
	if math.IsNaN(s.GravityZ) || math.IsInf(s.GravityZ, 0) {
		return false
	}
	m.latest.Store(&s)
	return true
}

// Latest returns the most recent sample, or false if none was stored yet.
func (m *MotionSlot) Latest() (Sample, bool) {
	p := m.latest.Load()
	if p == nil {
		return Sample{}, false
	}
	return *p, true
}

// Clear drops the stored sample.
func (m *MotionSlot) Clear() {
	m.latest.Store(nil)
}
