package tpms

import (
	"errors"
	"math"

	"github.com/metalat/tpms/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// Thicken converts a zero-crossing surface field value into a solid shell of
// the given total thickness centered on the zero set:
//  |field| - thickness/2
// A zero thickness collapses to the raw absolute value, a degenerate shell of
// zero width that encloses no solid region.
func Thicken(field, thickness float64) float64 {
	return math.Abs(field) - thickness/2
}

// Config is the full parameterization of a cylindrical TPMS shell field.
// It is a value object: construct it once and pass it to Shell.
type Config struct {
	// CylinderRadius is the mid-wall radius of the cylindrical shell.
	CylinderRadius float64
	// WallThickness is the wall half-width. The annulus spans
	// [CylinderRadius-WallThickness, CylinderRadius+WallThickness].
	// A WallThickness >= CylinderRadius leaves an empty or inverted wall;
	// the resulting field is degenerate but well defined.
	WallThickness float64
	// VariantA is the more auxetic lattice parameterization, selected where
	// the blend weight is 0.
	VariantA Variant
	// VariantB is the less auxetic lattice parameterization, selected where
	// the blend weight is 1.
	VariantB Variant
	// Blend selects how the two variants are mixed over space.
	Blend BlendConfig
	// SurfaceThickness is the total thickness of the solidified TPMS surface.
	SurfaceThickness float64
	// Region selects the annulus formulation. A nil Region selects
	// ShellInsideNegative, the canonical inside-negative convention. Choosing
	// ShellInsidePositive flips the shell term's sign and with it the
	// inside/outside interpretation of the composed solid.
	Region ShellFunc
	// Height is the axial extent reported by Bounds for meshers. The field
	// itself is unbounded in z. Height <= 0 defaults to twice the outer
	// radius.
	Height float64
}

// Production parameter set of the auxetic shell. These are defaults, not
// hard-coded behavior: any Config field may be overridden.
const (
	DefaultCylinderRadius   = 3.0
	DefaultWallThickness    = 0.5
	DefaultFreqScale        = 3.25
	DefaultVariantBFreqMult = 1.5
	DefaultLevelSetA        = -0.8
	DefaultLevelSetB        = 0.6
	DefaultSurfaceThickness = 0.2
)

// DefaultConfig returns the production configuration: variant A more auxetic,
// variant B less auxetic at 1.5x frequency, blended linearly along x over the
// cylinder radius.
func DefaultConfig() Config {
	return Config{
		CylinderRadius: DefaultCylinderRadius,
		WallThickness:  DefaultWallThickness,
		VariantA: Variant{
			Params: VariantParams{LevelSet: DefaultLevelSetA, FreqScale: DefaultFreqScale},
		},
		VariantB: Variant{
			Params: VariantParams{
				LevelSet:  DefaultLevelSetB,
				FreqScale: DefaultFreqScale * DefaultVariantBFreqMult,
			},
		},
		Blend:            BlendConfig{Mode: BlendLinearX, Extent: DefaultCylinderRadius},
		SurfaceThickness: DefaultSurfaceThickness,
	}
}

// shell is a TPMS lattice bounded to a cylindrical shell wall.
type shell struct {
	inner, outer float64 // annulus bounds
	a, b         Variant
	mode         BlendMode
	sharpness    float64
	extent       float64
	thickness    float64
	region       ShellFunc
	bb           r3.Box
}

// Shell returns the signed field of a TPMS auxetic lattice bounded to a
// cylindrical shell: the intersection (pointwise max) of the annulus region
// with the thickened, blended TPMS surface. The returned SDF3 is immutable
// and safe for concurrent evaluation.
func Shell(cfg Config) (SDF3, error) {
	switch {
	case cfg.CylinderRadius <= 0:
		return nil, errors.New("cylinder radius <= 0")
	case cfg.WallThickness < 0:
		return nil, errors.New("wall thickness < 0")
	case cfg.SurfaceThickness < 0:
		return nil, errors.New("surface thickness < 0")
	case cfg.Blend.Mode < BlendLinearX || cfg.Blend.Mode > BlendHardAngle:
		return nil, errors.New("unknown blend mode")
	case cfg.Blend.Mode == BlendLinearX && cfg.Blend.Extent <= 0:
		return nil, errors.New("linear blend extent <= 0")
	}
	s := shell{
		inner:     cfg.CylinderRadius - cfg.WallThickness,
		outer:     cfg.CylinderRadius + cfg.WallThickness,
		a:         cfg.VariantA,
		b:         cfg.VariantB,
		mode:      cfg.Blend.Mode,
		sharpness: cfg.Blend.Sharpness,
		extent:    cfg.Blend.Extent,
		thickness: cfg.SurfaceThickness,
		region:    cfg.Region,
	}
	if s.region == nil {
		s.region = ShellInsideNegative
	}
	h := cfg.Height
	if h <= 0 {
		h = 2 * s.outer
	}
	d := d3.Elem(s.outer)
	d.Z = h / 2
	s.bb = r3.Box{Min: r3.Scale(-1, d), Max: d}
	return &s, nil
}

// Evaluate returns the composed field value at p.
func (s *shell) Evaluate(p r3.Vec) float64 {
	region := s.region(CylinderRadius(p.X, p.Y), s.inner, s.outer)
	var surf float64
	switch s.mode {
	case BlendSigmoidAngle:
		t := (CylinderAngle(p.X, p.Y) + pi) / tau
		w := SigmoidBlend(t, s.sharpness)
		surf = Mix(s.a.Evaluate(p), s.b.Evaluate(p), w)
	case BlendHardAngle:
		if CylinderAngle(p.X, p.Y) < 0 {
			surf = s.a.Evaluate(p)
		} else {
			surf = s.b.Evaluate(p)
		}
	default: // BlendLinearX
		w := LinearBlendFactor(p.X, s.extent)
		surf = Mix(s.a.Evaluate(p), s.b.Evaluate(p), w)
	}
	// intersect the shell wall with the thickened lattice surface
	return math.Max(region, Thicken(surf, s.thickness))
}

// Bounds returns the advisory bounding box of the shell.
func (s *shell) Bounds() r3.Box {
	return s.bb
}
