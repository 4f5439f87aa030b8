package tpms_test

import (
	"math"
	"testing"

	"github.com/metalat/tpms"
	"gonum.org/v1/gonum/floats"
)

func TestCylinderRadius(t *testing.T) {
	if got := tpms.CylinderRadius(3, 4); got != 5 {
		t.Errorf("CylinderRadius(3,4) = %v, want 5", got)
	}
	if got := tpms.CylinderRadius(0, 0); got != 0 {
		t.Errorf("CylinderRadius(0,0) = %v, want 0", got)
	}
	if got := tpms.CylinderRadius(-3, 4); got != 5 {
		t.Errorf("CylinderRadius(-3,4) = %v, want 5", got)
	}
}

func TestCylinderAngle(t *testing.T) {
	for _, c := range []struct{ x, y, want float64 }{
		{0, 0, 0}, // math.Atan2 convention
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{0, -1, -math.Pi / 2},
	} {
		if got := tpms.CylinderAngle(c.x, c.y); got != c.want {
			t.Errorf("CylinderAngle(%v,%v) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestShellFormulations(t *testing.T) {
	const (
		inner = 2.5
		outer = 3.5
		eps   = 1e-9
	)
	rs := make([]float64, 121)
	floats.Span(rs, 0, 6)
	for _, r := range rs {
		neg := tpms.ShellInsideNegative(r, inner, outer)
		pos := tpms.ShellInsidePositive(r, inner, outer)
		// the two formulations are exact sign inverses
		if neg != -pos {
			t.Errorf("r=%v: max-based %v != -(min-based %v)", r, neg, pos)
		}
		switch {
		case r > inner+eps && r < outer-eps:
			if neg >= 0 {
				t.Errorf("r=%v inside wall but ShellInsideNegative = %v", r, neg)
			}
		case r < inner-eps || r > outer+eps:
			if neg <= 0 {
				t.Errorf("r=%v outside wall but ShellInsideNegative = %v", r, neg)
			}
		}
	}
}
