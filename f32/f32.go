// Package f32 is a float32 rendition of the tpms field intended for
// memory-bound, high-volume batch sampling. Positions and field values travel
// through flat slices so callers can reuse buffers across sampling passes.
package f32

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// SDF3 implements a 3D signed field in vectorized form.
type SDF3 interface {
	// Evaluate evaluates the signed field over pos positions. dist and pos
	// must be of same length. Resulting field values are stored in dist.
	//
	// userData facilitates getting data to evaluators. The evaluators in
	// this package ignore it.
	Evaluate(pos []ms3.Vec, dist []float32, userData any) error
	// Bounds returns the advisory bounding box of the field.
	Bounds() ms3.Box
}

// SchwarzPrimitive evaluates the Schwarz Primitive basis function at p:
//  cos(x) + cos(y) + cos(z) - levelSet
func SchwarzPrimitive(p ms3.Vec, levelSet float32) float32 {
	return math32.Cos(p.X) + math32.Cos(p.Y) + math32.Cos(p.Z) - levelSet
}

// VariantParams parameterizes a TPMS variant. See the float64 package docs.
type VariantParams struct {
	LevelSet   float32
	Amplitude  float32
	FreqScale  float32
	PhaseShift float32
}

// VariantFunc evaluates a parameterized TPMS surface field at a point.
type VariantFunc func(p ms3.Vec, k VariantParams) float32

// ModulatedVariant is the amplitude-modulated cosine sum formulation.
func ModulatedVariant(p ms3.Vec, k VariantParams) float32 {
	f := k.FreqScale
	ph := k.PhaseShift
	sum := math32.Cos((p.X+ph)*f) + math32.Cos((p.Y+ph)*f) + math32.Cos((p.Z+ph)*f)
	return k.Amplitude*sum - k.LevelSet
}

// ScaledVariant is the pure frequency-scaled Schwarz Primitive formulation.
func ScaledVariant(p ms3.Vec, k VariantParams) float32 {
	return SchwarzPrimitive(ms3.Scale(k.FreqScale, p), k.LevelSet)
}

// Variant is one named, fixed parameterization of the TPMS surface.
// A nil Func selects ScaledVariant.
type Variant struct {
	Params VariantParams
	Func   VariantFunc
}

func (v Variant) eval(p ms3.Vec) float32 {
	if v.Func == nil {
		return ScaledVariant(p, v.Params)
	}
	return v.Func(p, v.Params)
}

// ShellFunc maps a cylindrical radius and annulus bounds to a signed region
// value.
type ShellFunc func(r, inner, outer float32) float32

// ShellInsideNegative is the max-based annulus formulation, negative inside
// the wall. Canonical convention.
func ShellInsideNegative(r, inner, outer float32) float32 {
	return math32.Max(inner-r, r-outer)
}

// ShellInsidePositive is the min-based annulus formulation, the sign inverse
// of ShellInsideNegative.
func ShellInsidePositive(r, inner, outer float32) float32 {
	return math32.Min(outer-r, r-inner)
}

// SigmoidBlend maps t in [0,1] to a blend weight 1/(1+exp(-sharpness*(t-0.5))).
func SigmoidBlend(t, sharpness float32) float32 {
	return 1 / (1 + math32.Exp(-sharpness*(t-0.5)))
}

// LinearBlendFactor maps x to a weight via a linear ramp over
// [-extent, extent] clamped to [0,1].
func LinearBlendFactor(x, extent float32) float32 {
	return clampf((x+extent)/(2*extent), 0, 1)
}

// Thicken converts a zero-crossing surface field value into a solid shell
// field value: |field| - thickness/2.
func Thicken(field, thickness float32) float32 {
	return math32.Abs(field) - thickness/2
}

func mixf(x, y, a float32) float32 {
	return x + a*(y-x)
}

func clampf(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
