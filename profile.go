package twistedtube

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultSamples is the profile resolution used when a caller passes a
// non-positive sample count to Profile or Properties.
const DefaultSamples = 1000

// Polar is a single cross-section profile sample in polar coordinates.
type Polar struct {
	Theta float64 // angle [rad]
	R     float64 // radius [m]
}

// Cartesian returns the sample as an x,y point.
func (p Polar) Cartesian() r2.Vec {
	return r2.Vec{X: p.R * math.Cos(p.Theta), Y: p.R * math.Sin(p.Theta)}
}

// Radius evaluates the lobed profile r(θ) = Ravg + a·cos(n·θ).
func (t Tube) Radius(theta float64) float64 {
	return t.avgRadius + t.waveAmplitude*math.Cos(float64(t.numLobes)*theta)
}

// Profile samples the cross-section profile at samples angles spanning the
// closed interval [0, 2π]. Both endpoints are included, so the last sample
// duplicates the first up to floating point rounding. Output is deterministic:
// equal sample counts yield bit-identical profiles.
//
// samples <= 0 selects DefaultSamples.
func (t Tube) Profile(samples int) []Polar {
	if samples <= 0 {
		samples = DefaultSamples
	}
	prof := make([]Polar, samples)
	if samples == 1 {
		prof[0] = Polar{Theta: 0, R: t.Radius(0)}
		return prof
	}
	step := 2 * math.Pi / float64(samples-1)
	for i := range prof {
		theta := float64(i) * step
		if i == samples-1 {
			theta = 2 * math.Pi
		}
		prof[i] = Polar{Theta: theta, R: t.Radius(theta)}
	}
	return prof
}
