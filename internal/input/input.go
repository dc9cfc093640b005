// Package input turns terminal bytes into per-frame key state and holds the
// latest motion sample for the player controller.
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals repeat held keys at roughly 30ms after the initial delay.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit    bool
	Up      bool
	Down    bool
	Space   bool
	Enter   bool
	Pressed []byte
}

// Tap reports whether this frame carries a fire/acknowledge press.
func (in Input) Tap() bool {
	return in.Space || in.Enter
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit time.Time
	up   time.Time
	down time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
	now   func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// Handles escape sequences for arrow keys. Space and Enter are edge
// triggered: they are set only on the frame their byte arrives so a
// held key does not fire every frame.
func ReadInput(s *Stream) Input {
	now := s.now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	var in Input
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C', 'D':
				i += 2
				continue
			}
		}

		switch b {
		case ' ':
			in.Space = true
		case '\n', '\r':
			in.Enter = true
		}
		applyByteToState(&s.state, b, now)
	}

	in.Quit = closed || now.Sub(s.state.quit) < keyHoldDuration
	in.Up = now.Sub(s.state.up) < keyHoldDuration
	in.Down = now.Sub(s.state.down) < keyHoldDuration
	in.Pressed = buf
	return in
}

// Reset forgets held keys, e.g. when a new session starts.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		state.quit = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	}
}
