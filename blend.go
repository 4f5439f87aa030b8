package tpms

import "math"

// Blend operators mapping a spatial coordinate to a weight in [0,1] used to
// interpolate the two lattice variants.

// BlendMode selects how the blend weight between variant A and variant B is
// derived from the query point.
type BlendMode int

const (
	// BlendLinearX derives the weight from a clamped linear ramp of the x
	// coordinate over [-Extent, Extent].
	BlendLinearX BlendMode = iota
	// BlendSigmoidAngle derives the weight from a sigmoid of the normalized
	// cylindrical angle, with Sharpness controlling the transition width.
	BlendSigmoidAngle
	// BlendHardAngle selects variant A for negative angles and variant B
	// otherwise. No interpolation: the field is C0-discontinuous at the
	// selection boundary.
	BlendHardAngle
)

// BlendConfig selects a blend mode and its parameters.
type BlendConfig struct {
	Mode BlendMode
	// Sharpness saturates the sigmoid toward a hard switch as it grows.
	// Zero sharpness yields a constant 0.5 weight. Used by BlendSigmoidAngle.
	Sharpness float64
	// Extent is the half-width of the linear ramp, must be > 0.
	// Used by BlendLinearX.
	Extent float64
}

// SigmoidBlend maps t in [0,1] to a blend weight:
//  1 / (1 + exp(-sharpness*(t-0.5)))
// Monotonic in t, fixed point at t=0.5.
func SigmoidBlend(t, sharpness float64) float64 {
	return 1 / (1 + math.Exp(-sharpness*(t-0.5)))
}

// LinearBlendFactor maps x to a weight via a linear ramp over
// [-extent, extent] clamped to [0,1].
func LinearBlendFactor(x, extent float64) float64 {
	return Clamp((x+extent)/(2*extent), 0, 1)
}
