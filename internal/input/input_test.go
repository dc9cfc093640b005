package input

import (
	"math"
	"sync"
	"testing"
	"time"
)

func newTestStream(now time.Time) *Stream {
	return &Stream{ch: make(chan byte, 128), now: func() time.Time { return now }}
}

func feed(s *Stream, bs ...byte) {
	for _, b := range bs {
		s.ch <- b
	}
}

func TestReadInputKeys(t *testing.T) {
	now := time.Unix(100, 0)
	s := newTestStream(now)
	feed(s, ' ', '\x1b', '[', 'A')

	in := ReadInput(s)
	if !in.Space || !in.Tap() {
		t.Fatal("space should register as tap")
	}
	if !in.Up || in.Down {
		t.Fatalf("up=%v down=%v, want up only", in.Up, in.Down)
	}

	// Space is edge triggered, up is held for keyHoldDuration.
	in = ReadInput(s)
	if in.Space {
		t.Fatal("space repeated without a new byte")
	}
	if !in.Up {
		t.Fatal("up should still be held")
	}

	s.now = func() time.Time { return now.Add(keyHoldDuration) }
	if in = ReadInput(s); in.Up {
		t.Fatal("up should expire after hold duration")
	}
}

func TestReadInputQuitOnClose(t *testing.T) {
	s := newTestStream(time.Unix(0, 0))
	close(s.ch)
	if in := ReadInput(s); !in.Quit {
		t.Fatal("closed stream should report quit")
	}
}

func TestMotionSlot(t *testing.T) {
	var m MotionSlot
	if _, ok := m.Latest(); ok {
		t.Fatal("empty slot reported a sample")
	}
	m.Store(Sample{GravityZ: -0.5})
	m.Store(Sample{GravityZ: -0.7})
	if s, ok := m.Latest(); !ok || s.GravityZ != -0.7 {
		t.Fatalf("Latest = %v, %v; want -0.7, true", s, ok)
	}
	if m.Store(Sample{GravityZ: math.NaN()}) {
		t.Fatal("NaN sample accepted")
	}
	if s, _ := m.Latest(); s.GravityZ != -0.7 {
		t.Fatalf("NaN overwrote sample: %v", s)
	}
	m.Clear()
	if _, ok := m.Latest(); ok {
		t.Fatal("sample present after Clear")
	}
}

func TestMotionSlotConcurrentWriters(t *testing.T) {
	var m MotionSlot
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(z float64) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				m.Store(Sample{GravityZ: z})
			}
		}(float64(i))
	}
	wg.Wait()
	s, ok := m.Latest()
	if !ok || s.GravityZ < 0 || s.GravityZ > 3 {
		t.Fatalf("Latest = %v, %v", s, ok)
	}
}

func TestKeyTilt(t *testing.T) {
	var m MotionSlot
	k := NewKeyTilt(&m, 0.5)
	tests := []struct {
		up, down bool
		want     float64
	}{
		{false, false, 0},
		{true, false, -0.5},
		{false, true, 0.5},
		{true, true, 0},
	}
	for _, tt := range tests {
		k.Update(tt.up, tt.down)
		if s, _ := m.Latest(); s.GravityZ != tt.want {
			t.Fatalf("up=%v down=%v z=%v, want %v", tt.up, tt.down, s.GravityZ, tt.want)
		}
	}
}
