package loop

import (
	"testing"

	"github.com/tomz197/shoot/internal/config"
	"github.com/tomz197/shoot/internal/input"
	"github.com/tomz197/shoot/internal/object"
)

type sampleSeq struct {
	samples []input.Sample
	i       int
}

func (s *sampleSeq) Latest() (input.Sample, bool) {
	if len(s.samples) == 0 {
		return input.Sample{}, false
	}
	v := s.samples[min(s.i, len(s.samples)-1)]
	s.i++
	return v, true
}

func TestControllerBaselineIsFirstSample(t *testing.T) {
	c := NewPlayerController()
	if _, ok := c.Baseline(); ok {
		t.Fatal("calibrated before any sample")
	}
	for _, z := range []float64{-0.7, -0.1, -0.95} {
		c.Force(input.Sample{GravityZ: z})
	}
	if b, ok := c.Baseline(); !ok || b != -0.7 {
		t.Fatalf("baseline = %v, %v; want -0.7, true", b, ok)
	}
}

func TestControllerForce(t *testing.T) {
	tests := []struct {
		name string
		z    float64
		want float64
	}{
		{"at baseline", -0.5, 0},
		{"inside dead zone", -0.35, 0},
		{"other side of dead zone", -0.65, 0},
		{"tilted up", -0.9, (0.9 - 0.5) * config.TiltForceScale},
		{"tilted down", 0.1, (-0.1 - 0.5) * config.TiltForceScale},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPlayerController()
			c.Force(input.Sample{GravityZ: -0.5})
			got := c.Force(input.Sample{GravityZ: tt.z})
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("Force(%v) = %v, want %v", tt.z, got, tt.want)
			}
		})
	}
}

func TestControllerApply(t *testing.T) {
	screen := object.NewScreen(config.ViewWidth, config.ViewHeight)
	p := object.NewPlayer(1, screen)
	c := NewPlayerController()

	c.Apply(&sampleSeq{}, p)
	if _, ok := c.Baseline(); ok || p.Force != 0 {
		t.Fatal("no sample should be a no-op")
	}

	src := &sampleSeq{samples: []input.Sample{{GravityZ: 0}, {GravityZ: -1}}}
	c.Apply(src, p)
	if p.Force != 0 {
		t.Fatalf("calibration frame force = %v, want 0", p.Force)
	}
	c.Apply(src, p)
	if p.Force != config.TiltForceScale {
		t.Fatalf("force = %v, want %v", p.Force, config.TiltForceScale)
	}
	// Assigned, not accumulated.
	c.Apply(src, p)
	if p.Force != config.TiltForceScale {
		t.Fatalf("force accumulated to %v", p.Force)
	}
}
