package starfield

import (
	"math"
	"math/rand"
	"testing"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/object"
	"github.com/tsujio/game-util/mathutil"
)

func TestDefaultLayers(t *testing.T) {
	f := New(object.NewScreen(config.ViewWidth, config.ViewHeight), rand.New(rand.NewSource(1)), DefaultLayers())
	if len(f.Layers) != 3 {
		t.Fatalf("layers = %d, want 3", len(f.Layers))
	}
	wantSpeeds := []float64{90, 60, 30}
	for i, l := range f.Layers {
		if len(l.Stars) != 50 {
			t.Fatalf("layer %d stars = %d, want 50", i, len(l.Stars))
		}
		if l.Speed != wantSpeeds[i] {
			t.Fatalf("layer %d speed = %v, want %v", i, l.Speed, wantSpeeds[i])
		}
	}
}

func TestAdvanceStaysInBounds(t *testing.T) {
	screen := object.NewScreen(config.ViewWidth, config.ViewHeight)
	f := New(screen, rand.New(rand.NewSource(7)), DefaultLayers())
	for _, dt := range []float64{0, 0.0166, 0.5, 1, 3.7, 100} {
		f.Advance(dt)
		for li, l := range f.Layers {
			for si, s := range l.Stars {
				if s.X < 0 || s.X >= float64(screen.Width) || s.Y < 0 || s.Y >= float64(screen.Height) {
					t.Fatalf("dt=%v layer %d star %d out of bounds: %v", dt, li, si, s)
				}
			}
		}
	}
	if f.Count() != 150 {
		t.Fatalf("star count = %d, want 150", f.Count())
	}
}

func TestAdvanceWrapsModBound(t *testing.T) {
	screen := object.NewScreen(100, 50)
	f := &Field{
		Direction: mathutil.NewVector2D(-1, 0),
		screen:    screen,
		Layers: []*Layer{{
			Stars: []*mathutil.Vector2D{mathutil.NewVector2D(5, 10), mathutil.NewVector2D(50, 20)},
			Speed: 30,
		}},
	}
	f.Advance(0.5) // 15 units left

	cases := []struct{ got, want float64 }{
		{f.Layers[0].Stars[0].X, math.Mod(5-15+100, 100)},
		{f.Layers[0].Stars[1].X, 35},
		{f.Layers[0].Stars[0].Y, 10},
	}
	for i, c := range cases {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Fatalf("case %d: got %v, want %v", i, c.got, c.want)
		}
	}
}

func TestParallaxOrdering(t *testing.T) {
	screen := object.NewScreen(1000, 100)
	f := New(screen, rand.New(rand.NewSource(3)), DefaultLayers())
	for _, l := range f.Layers {
		for _, s := range l.Stars {
			s.X = 500
		}
	}
	f.Advance(1)
	fast, slow := f.Layers[0].Stars[0].X, f.Layers[2].Stars[0].X
	if !(fast < slow) {
		t.Fatalf("front layer should move further: fast=%v slow=%v", fast, slow)
	}
}
