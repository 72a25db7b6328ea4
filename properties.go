package twistedtube

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// CrossSection holds the geometric properties of a tube cross-section.
// It is a plain value computed on demand by Tube.Properties.
type CrossSection struct {
	Area               float64 // cross-sectional area [m²]
	Perimeter          float64 // wetted perimeter [m]
	EquivalentDiameter float64 // hydraulic diameter 4A/P, 0 when P <= 0 [m]
	InnerDiameter      float64 // valley diameter D_min [m]
	OuterDiameter      float64 // peak diameter D_max [m]
}

// Properties computes area, perimeter and hydraulic diameter of the
// cross-section by numerical integration over a single generated profile.
//
// Area is the polar integral A = ½∮r²dθ and the perimeter is the arc length
// P = ∮√(r² + (dr/dθ)²)dθ with the derivative taken in closed form,
// dr/dθ = -a·n·sin(n·θ). Both are uniform-weight Riemann sums with
// Δθ = 2π/samples over all generated radii. The profile spans the closed
// interval [0, 2π], so the θ=2π sample repeats θ=0; the duplicate term stays
// in the sums and introduces a small consistent bias. Do not change the
// quadrature: downstream consumers depend on these exact values.
//
// samples <= 0 selects DefaultSamples. InnerDiameter and OuterDiameter are
// carried through from the tube unchanged.
func (t Tube) Properties(samples int) CrossSection {
	prof := t.Profile(samples)
	n := len(prof)
	dtheta := 2 * math.Pi / float64(n)
	lobes := float64(t.numLobes)

	rsq := make([]float64, n)
	arc := make([]float64, n)
	for i, p := range prof {
		rsq[i] = p.R * p.R
		drdt := -t.waveAmplitude * lobes * math.Sin(lobes*p.Theta)
		arc[i] = math.Sqrt(p.R*p.R + drdt*drdt)
	}
	area := 0.5 * floats.Sum(rsq) * dtheta
	perimeter := floats.Sum(arc) * dtheta

	var equivalent float64
	if perimeter > 0 {
		equivalent = 4 * area / perimeter
	}
	return CrossSection{
		Area:               area,
		Perimeter:          perimeter,
		EquivalentDiameter: equivalent,
		InnerDiameter:      t.innerDiameter,
		OuterDiameter:      t.outerDiameter,
	}
}
