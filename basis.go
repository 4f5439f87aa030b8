package tpms

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Periodic trigonometric basis functions and their parameterized variants.

// SchwarzPrimitive evaluates the Schwarz Primitive basis function at p:
//  cos(x) + cos(y) + cos(z) - levelSet
// It is periodic with period 2*pi on each axis and zero-mean for levelSet=0.
// levelSet shifts the implicit zero-crossing surface.
func SchwarzPrimitive(p r3.Vec, levelSet float64) float64 {
	return math.Cos(p.X) + math.Cos(p.Y) + math.Cos(p.Z) - levelSet
}

// VariantParams parameterizes a TPMS variant. Amplitude and PhaseShift are
// only meaningful to variant functions that use them.
type VariantParams struct {
	// LevelSet shifts the zero-crossing surface of the variant.
	LevelSet float64
	// Amplitude scales the oscillatory part of the field.
	Amplitude float64
	// FreqScale scales the spatial frequency of the lattice cells.
	FreqScale float64
	// PhaseShift is added to each coordinate before frequency scaling.
	PhaseShift float64
}

// VariantFunc evaluates a parameterized TPMS surface field at a point.
type VariantFunc func(p r3.Vec, k VariantParams) float64

// ModulatedVariant is the amplitude-modulated cosine sum formulation:
//  Amplitude*(cos((x+ph)*f) + cos((y+ph)*f) + cos((z+ph)*f)) - LevelSet
// Its range is [-3*Amplitude-LevelSet, 3*Amplitude-LevelSet].
func ModulatedVariant(p r3.Vec, k VariantParams) float64 {
	f := k.FreqScale
	ph := k.PhaseShift
	sum := math.Cos((p.X+ph)*f) + math.Cos((p.Y+ph)*f) + math.Cos((p.Z+ph)*f)
	return k.Amplitude*sum - k.LevelSet
}

// ScaledVariant is the pure frequency-scaled Schwarz Primitive formulation.
// Amplitude and PhaseShift are ignored.
func ScaledVariant(p r3.Vec, k VariantParams) float64 {
	return SchwarzPrimitive(r3.Scale(k.FreqScale, p), k.LevelSet)
}

// Variant is one named, fixed parameterization of the TPMS surface.
type Variant struct {
	Params VariantParams
	// Func selects the variant formulation. A nil Func selects ScaledVariant.
	Func VariantFunc
}

// Evaluate returns the variant surface field at p.
func (v Variant) Evaluate(p r3.Vec) float64 {
	if v.Func == nil {
		return ScaledVariant(p, v.Params)
	}
	return v.Func(p, v.Params)
}
