package ebitenhost

import (
	"testing"
	"time"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/loop"
)

func TestCoordinateFlip(t *testing.T) {
	x, y := toWorld(10, 0)
	if x != 10 || y != float64(config.ViewHeight) {
		t.Fatalf("toWorld(10, 0) = %v, %v", x, y)
	}
	sx, sy := toScreen(toWorld(123, 45))
	if sx != 123 || sy != 45 {
		t.Fatalf("round trip = %v, %v, want 123, 45", sx, sy)
	}
}

func TestStickTiltClamps(t *testing.T) {
	tests := []struct{ axis, want float64 }{
		{-2, -1},
		{-0.5, -0.5},
		{0.3, 0.3},
		{1.5, 1},
	}
	for _, tt := range tests {
		if got := stickTilt(tt.axis); got != tt.want {
			t.Fatalf("stickTilt(%v) = %v, want %v", tt.axis, got, tt.want)
		}
	}
}

func TestPresentKeepsFinalScore(t *testing.T) {
	g, err := NewGame(Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.scene != loop.SceneGame || g.scoreText != "Score: 0" {
		t.Fatalf("initial scene %q text %q", g.scene, g.scoreText)
	}

	now := time.Unix(100, 0)
	g.now = func() time.Time { return now }

	g.SetText("Score: 4")
	g.Present(loop.SceneGameOver, loop.FlipHorizontal)
	g.SetText("Score: 0")
	g.Present(loop.SceneGame, loop.FlipHorizontal)

	if g.finalText != "Score: 4" {
		t.Fatalf("final text = %q, want Score: 4", g.finalText)
	}
	if g.prevScene != loop.SceneGameOver || g.scene != loop.SceneGame {
		t.Fatalf("scenes prev=%q cur=%q", g.prevScene, g.scene)
	}
	if !g.transStart.Equal(now) {
		t.Fatalf("transition start = %v, want %v", g.transStart, now)
	}
}
