package tpms

import "math"

// Cylindrical coordinate helpers and the annulus (shell wall) region.

// CylinderRadius returns the distance of (x,y) from the z axis.
func CylinderRadius(x, y float64) float64 {
	return math.Hypot(x, y)
}

// CylinderAngle returns the angle of (x,y) about the z axis in (-pi, pi].
// CylinderAngle(0, 0) is 0, matching math.Atan2.
func CylinderAngle(x, y float64) float64 {
	return math.Atan2(y, x)
}

// ShellFunc maps a cylindrical radius and the annulus bounds [inner, outer]
// to a signed region value. The two provided formulations carry opposite sign
// conventions; composed fields in this package assume the inside-negative
// convention of ShellInsideNegative.
type ShellFunc func(r, inner, outer float64) float64

// ShellInsideNegative is the max-based annulus formulation:
//  max(inner-r, r-outer)
// Negative inside the wall [inner, outer], positive outside. This is the
// canonical convention used by Shell.
func ShellInsideNegative(r, inner, outer float64) float64 {
	return math.Max(inner-r, r-outer)
}

// ShellInsidePositive is the min-based annulus formulation:
//  min(outer-r, r-inner)
// It is the sign inverse of ShellInsideNegative: positive inside the wall,
// negative outside. Selecting it flips the inside/outside interpretation of
// the shell term in a composed field.
func ShellInsidePositive(r, inner, outer float64) float64 {
	return math.Min(outer-r, r-inner)
}
