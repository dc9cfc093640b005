package client

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/loop"
)

func fixedSize(w, h int) func() (int, int, error) {
	return func() (int, int, error) { return w, h, nil }
}

func TestClampTermSize(t *testing.T) {
	tests := []struct {
		w, h                   int
		rw, rh, offCol, offRow int
	}{
		{80, 24, 80, 24, 0, 0},
		{config.MaxTermWidth + 20, config.MaxTermHeight + 10, config.MaxTermWidth, config.MaxTermHeight, 10, 5},
		{0, 0, 1, 1, 0, 0},
	}
	for _, tt := range tests {
		rw, rh, oc, or := clampTermSize(tt.w, tt.h)
		if rw != tt.rw || rh != tt.rh || oc != tt.offCol || or != tt.offRow {
			t.Fatalf("clampTermSize(%d, %d) = %d,%d,%d,%d", tt.w, tt.h, rw, rh, oc, or)
		}
	}
}

func TestFlipScale(t *testing.T) {
	s := NewClientState()
	if s.flipScale() != 1 {
		t.Fatal("idle scale should be 1")
	}
	s.transition = loop.FlipHorizontal
	s.advance(s.transition.Duration / 4)
	if got := s.flipScale(); got < 0.49 || got > 0.51 {
		t.Fatalf("quarter scale = %v, want 0.5", got)
	}
	s.advance(s.transition.Duration / 4)
	if got := s.flipScale(); got > 0.01 {
		t.Fatalf("midpoint scale = %v, want 0", got)
	}
	s.advance(s.transition.Duration)
	if s.flipScale() != 1 {
		t.Fatal("finished transition should be 1")
	}
}

func TestRunDrawsHUDAndQuits(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(bufio.NewReader(strings.NewReader("q")), &out, ClientOptions{
		TermSizeFunc: fixedSize(80, 24),
		Seed:         1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run did not stop on quit")
	}
	if !strings.Contains(out.String(), "Score: 0") {
		t.Fatal("HUD not drawn")
	}
}

func TestPresenterAndHUD(t *testing.T) {
	var out bytes.Buffer
	c := NewClient(bufio.NewReader(strings.NewReader("")), &out, ClientOptions{TermSizeFunc: fixedSize(80, 24), Seed: 1})
	c.SetText("Score: 7")
	c.Present(loop.SceneGameOver, loop.FlipHorizontal)
	if c.state.ScoreText != "Score: 7" || c.state.Scene != loop.SceneGameOver {
		t.Fatalf("state = %+v", c.state)
	}
	if err := c.drawFrame(); err != nil {
		t.Fatalf("drawFrame: %v", err)
	}
}
