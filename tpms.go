// Package tpms evaluates implicit signed fields of triply-periodic-minimal-surface
// (TPMS) auxetic metamaterial lattices bounded to cylindrical shells.
//
// The package is a pure mathematical core meant to be consumed by an external
// polygonizer or mesher: it defines no sampling grid, mesh output or rendering.
// Fields follow the signed distance convention where a negative value means the
// point is inside the solid and the zero set is the solid's boundary surface.
// Field objects are immutable after construction and safe for concurrent use.
package tpms

import "gonum.org/v1/gonum/spatial/r3"

// SDF3 is the interface to a 3d signed field object.
type SDF3 interface {
	// Evaluate takes a point in 3D space as input and returns the value of
	// the signed field at that point. The value is negative if the point is
	// contained within the solid.
	Evaluate(p r3.Vec) float64
	// Bounds returns a bounding box containing the region of interest of the
	// field. It is advisory for meshers and does not clip the field, which is
	// defined over all of space.
	Bounds() r3.Box
}
