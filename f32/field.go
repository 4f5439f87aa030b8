package f32

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// BlendMode selects how the blend weight between the two variants is derived
// from the query point.
type BlendMode int

const (
	// BlendLinearX ramps the weight linearly with x over [-Extent, Extent].
	BlendLinearX BlendMode = iota
	// BlendSigmoidAngle applies a sigmoid to the normalized cylindrical angle.
	BlendSigmoidAngle
	// BlendHardAngle selects variant A for negative angles, variant B otherwise.
	BlendHardAngle
)

// BlendConfig selects a blend mode and its parameters.
type BlendConfig struct {
	Mode      BlendMode
	Sharpness float32
	Extent    float32
}

// Config is the float32 parameterization of a cylindrical TPMS shell field.
// Fields mirror the float64 package's Config.
type Config struct {
	CylinderRadius   float32
	WallThickness    float32
	VariantA         Variant
	VariantB         Variant
	Blend            BlendConfig
	SurfaceThickness float32
	// Region nil selects ShellInsideNegative.
	Region ShellFunc
	// Height <= 0 defaults to twice the outer radius.
	Height float32
}

type shell struct {
	inner, outer float32
	a, b         Variant
	mode         BlendMode
	sharpness    float32
	extent       float32
	thickness    float32
	region       ShellFunc
	bb           ms3.Box
}

// Shell returns the batch-evaluated signed field of a TPMS auxetic lattice
// bounded to a cylindrical shell.
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
	d := ms3.Vec{X: s.outer, Y: s.outer, Z: h / 2}
	s.bb = ms3.Box{Min: ms3.Scale(-1, d), Max: d}
	return &s, nil
}

// Evaluate computes the field over pos, storing results in dist.
func (s *shell) Evaluate(pos []ms3.Vec, dist []float32, userData any) error {
	if len(pos) != len(dist) {
		return errors.New("position and distance buffer length mismatch")
	}
	for i, p := range pos {
		region := s.region(math32.Hypot(p.X, p.Y), s.inner, s.outer)
		var surf float32
		switch s.mode {
		case BlendSigmoidAngle:
			t := (math32.Atan2(p.Y, p.X) + math32.Pi) / (2 * math32.Pi)
			w := SigmoidBlend(t, s.sharpness)
			surf = mixf(s.a.eval(p), s.b.eval(p), w)
		case BlendHardAngle:
			if math32.Atan2(p.Y, p.X) < 0 {
				surf = s.a.eval(p)
			} else {
				surf = s.b.eval(p)
			}
		default: // BlendLinearX
			w := LinearBlendFactor(p.X, s.extent)
			surf = mixf(s.a.eval(p), s.b.eval(p), w)
		}
		dist[i] = math32.Max(region, Thicken(surf, s.thickness))
	}
	return nil
}

// Bounds returns the advisory bounding box of the shell.
func (s *shell) Bounds() ms3.Box {
	return s.bb
}
