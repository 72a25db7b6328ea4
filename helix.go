package twistedtube

import "math"

// HelicalLengthFactor returns the ratio of the true helical arc length at the
// outer radius to the straight axial length over one full pitch turn,
//
//	√(1 + (2π·R_out / P)²)
//
// from the Pythagorean relation between axial and circumferential advance.
// The factor tends to 1 as the pitch grows and increases as the twist
// tightens. It is exactly 1 when the pitch is not positive, which cannot
// happen for a tube built with New but keeps the expression total.
func (t Tube) HelicalLengthFactor() float64 {
	if t.spiralPitch <= 0 {
		return 1.0
	}
	circumference := 2 * math.Pi * t.outerRadius
	x := circumference / t.spiralPitch
	return math.Sqrt(1 + x*x)
}

// HelicalPathLength returns the helical path length at the outer radius for
// one full rotation, P·HelicalLengthFactor.
func (t Tube) HelicalPathLength() float64 {
	return t.spiralPitch * t.HelicalLengthFactor()
}
