// Package starfield scrolls parallax layers of stars across a wrapping screen.
package starfield

import (
	"image/color"
	"math/rand"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/object"
	"github.com/tsujio/game-util/mathutil"
)

// Layer is a fixed set of stars sharing one speed and color.
type Layer struct {
	Stars []*mathutil.Vector2D
	Speed float64 // Units per second
	Color color.RGBA
}

// Field holds all layers and the scroll direction.
type Field struct {
	Layers    []*Layer
	Direction *mathutil.Vector2D // Unit vector
	screen    object.Screen
}

// LayerSpec describes one layer to build.
type LayerSpec struct {
	Count      int
	Multiplier float64 // Speed as a multiple of config.StarSpeedMultiple
	Color      color.RGBA
}

// DefaultLayers returns three white layers of 50 stars at 3x, 2x and 1x speed.
func DefaultLayers() []LayerSpec {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	specs := make([]LayerSpec, config.StarLayerCount)
	for i := range specs {
		specs[i] = LayerSpec{
			Count:      config.StarsPerLayer,
			Multiplier: float64(config.StarLayerCount - i),
			Color:      white,
		}
	}
	return specs
}

// New creates a leftward-scrolling field with stars placed uniformly at random.
func New(screen object.Screen, rng *rand.Rand, specs []LayerSpec) *Field {
	f := &Field{
		Direction: mathutil.NewVector2D(-1, 0),
		screen:    screen,
	}
	for _, spec := range specs {
		layer := &Layer{
			Stars: make([]*mathutil.Vector2D, spec.Count),
			Speed: spec.Multiplier * config.StarSpeedMultiple,
			Color: spec.Color,
		}
		for i := range layer.Stars {
			layer.Stars[i] = mathutil.NewVector2D(
				rng.Float64()*float64(screen.Width),
				rng.Float64()*float64(screen.Height),
			)
		}
		f.Layers = append(f.Layers, layer)
	}
	return f
}

// Advance moves every star by Direction * layer speed * dt and wraps it back
// onto the screen.
func (f *Field) Advance(dt float64) {
	for _, layer := range f.Layers {
		step := f.Direction.Mul(layer.Speed * dt)
		for _, star := range layer.Stars {
			star.X += step.X
			star.Y += step.Y
			f.screen.WrapPosition(&star.X, &star.Y)
		}
	}
}

// Count returns the total number of stars.
func (f *Field) Count() int {
	n := 0
	for _, layer := range f.Layers {
		n += len(layer.Stars)
	}
	return n
}
