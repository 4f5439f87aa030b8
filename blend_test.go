package tpms_test

import (
	"math"
	"testing"

	"github.com/metalat/tpms"
	"gonum.org/v1/gonum/floats"
)

func TestSigmoidBlendMidpoint(t *testing.T) {
	for _, sharpness := range []float64{0, 0.5, 2, 12, 64} {
		if got := tpms.SigmoidBlend(0.5, sharpness); got != 0.5 {
			t.Errorf("SigmoidBlend(0.5, %v) = %v, want 0.5", sharpness, got)
		}
	}
}

func TestSigmoidBlendZeroSharpness(t *testing.T) {
	ts := make([]float64, 11)
	floats.Span(ts, 0, 1)
	for _, v := range ts {
		if got := tpms.SigmoidBlend(v, 0); got != 0.5 {
			t.Errorf("SigmoidBlend(%v, 0) = %v, want constant 0.5", v, got)
		}
	}
}

func TestSigmoidBlendMonotonicSaturating(t *testing.T) {
	const sharpness = 12
	ts := make([]float64, 101)
	floats.Span(ts, 0, 1)
	prev := math.Inf(-1)
	for _, v := range ts {
		w := tpms.SigmoidBlend(v, sharpness)
		if w < prev {
			t.Fatalf("SigmoidBlend not monotonic at t=%v: %v < %v", v, w, prev)
		}
		prev = w
	}
	if w := tpms.SigmoidBlend(0, 1000); w > 1e-9 {
		t.Errorf("SigmoidBlend(0, 1000) = %v, want saturation toward 0", w)
	}
	if w := tpms.SigmoidBlend(1, 1000); w < 1-1e-9 {
		t.Errorf("SigmoidBlend(1, 1000) = %v, want saturation toward 1", w)
	}
}

func TestLinearBlendFactor(t *testing.T) {
	const extent = 3.0
	if got := tpms.LinearBlendFactor(-extent, extent); got != 0 {
		t.Errorf("LinearBlendFactor(-extent) = %v, want 0", got)
	}
	if got := tpms.LinearBlendFactor(extent, extent); got != 1 {
		t.Errorf("LinearBlendFactor(extent) = %v, want 1", got)
	}
	if got := tpms.LinearBlendFactor(0, extent); got != 0.5 {
		t.Errorf("LinearBlendFactor(0) = %v, want 0.5", got)
	}
	xs := make([]float64, 61)
	floats.Span(xs, -3*extent, 3*extent)
	for _, x := range xs {
		w := tpms.LinearBlendFactor(x, extent)
		if w < 0 || w > 1 {
			t.Errorf("LinearBlendFactor(%v) = %v outside [0,1]", x, w)
		}
	}
}

func TestMixEndpoints(t *testing.T) {
	for _, c := range []struct{ a, b float64 }{
		{0, 1},
		{-2.5, 3.5},
		{0.1, 0.3},
		{1e6, -2e6},
	} {
		if got := tpms.Mix(c.a, c.b, 0); got != c.a {
			t.Errorf("Mix(%v, %v, 0) = %v, want %v", c.a, c.b, got, c.a)
		}
		if got := tpms.Mix(c.a, c.b, 1); !tpms.EqualFloat64(got, c.b, 1e-12) {
			t.Errorf("Mix(%v, %v, 1) = %v, want %v", c.a, c.b, got, c.b)
		}
		mid := tpms.Mix(c.a, c.b, 0.5)
		if !tpms.EqualFloat64(mid, (c.a+c.b)/2, 1e-12) {
			t.Errorf("Mix(%v, %v, 0.5) = %v, want midpoint", c.a, c.b, mid)
		}
	}
}
