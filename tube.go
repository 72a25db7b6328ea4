// Package twistedtube computes the cross-section geometry of twisted tubes:
// tubes whose lobed (star-shaped) profile sweeps helically along the tube axis.
//
// The cross-section is described in polar coordinates by
//
//	r(θ) = Ravg + a·cos(n·θ)
//
// where Ravg is the mean of the outer and inner radius, a is half the lobe
// height and n is the number of lobes. Area, perimeter and hydraulic diameter
// are obtained by numerical integration of this profile; the helical path
// length at the outer radius follows in closed form from the spiral pitch.
//
// All dimensions are in meters unless stated otherwise.
package twistedtube

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors returned by New. The lobe count errors form one family,
// the dimension errors the other; every cause is a distinct value so callers
// can dispatch with errors.Is.
var (
	// ErrLobeCountNotInteger indicates a fractional (or non-finite) lobe count.
	ErrLobeCountNotInteger = errors.New("twistedtube: lobe count must be a whole number")
	// ErrLobeCount indicates a whole lobe count outside the supported 3 to 6 range.
	ErrLobeCount = errors.New("twistedtube: lobe count must be between 3 and 6")
	// ErrNonPositive indicates a dimension that is zero, negative or NaN.
	ErrNonPositive = errors.New("twistedtube: dimension must be positive")
	// ErrLobeTooDeep indicates a lobe height at or beyond the outer radius.
	ErrLobeTooDeep = errors.New("twistedtube: lobe height must be less than the outer radius")
)

// Tube is an immutable twisted tube. The zero value is not a valid tube;
// use New. A Tube is safe for concurrent use since no method mutates it.
type Tube struct {
	outerDiameter float64
	numLobes      int
	lobeHeight    float64
	spiralPitch   float64

	// derived at construction
	outerRadius   float64
	innerDiameter float64
	innerRadius   float64
	avgRadius     float64
	waveAmplitude float64
}

// New returns a twisted tube with the given geometry.
//   - outerDiameter is the circumscribed circle diameter D_out.
//   - numLobes is the number of lobes n. It is taken as a float64 so that
//     fractional counts coming from user input can be rejected explicitly;
//     it must be a whole number between 3 and 6.
//   - lobeHeight is the radial lobe depth h from peak to valley,
//     0 < h < D_out/2.
//   - spiralPitch is the axial length P of one full helical rotation.
//
// The error is one of the package sentinel errors wrapped with the offending
// value. No tube is returned on failure.
func New(outerDiameter, numLobes, lobeHeight, spiralPitch float64) (Tube, error) {
	if err := validate(outerDiameter, numLobes, lobeHeight, spiralPitch); err != nil {
		return Tube{}, err
	}
	t := Tube{
		outerDiameter: outerDiameter,
		numLobes:      int(numLobes),
		lobeHeight:    lobeHeight,
		spiralPitch:   spiralPitch,
	}
	t.outerRadius = t.outerDiameter / 2
	t.innerDiameter = t.outerDiameter - 2*t.lobeHeight
	t.innerRadius = t.innerDiameter / 2
	t.avgRadius = (t.outerRadius + t.innerRadius) / 2
	t.waveAmplitude = t.lobeHeight / 2
	return t, nil
}

func validate(outerDiameter, numLobes, lobeHeight, spiralPitch float64) error {
	// NaN fails the trunc comparison, infinities pass it, so check both.
	if math.IsInf(numLobes, 0) || numLobes != math.Trunc(numLobes) {
		return fmt.Errorf("%w, got %v", ErrLobeCountNotInteger, numLobes)
	}
	if numLobes < 3 || numLobes > 6 {
		return fmt.Errorf("%w, got %g", ErrLobeCount, numLobes)
	}
	if !(outerDiameter > 0) {
		return fmt.Errorf("%w: outer diameter %g", ErrNonPositive, outerDiameter)
	}
	if !(lobeHeight > 0) {
		return fmt.Errorf("%w: lobe height %g", ErrNonPositive, lobeHeight)
	}
	if !(spiralPitch > 0) {
		return fmt.Errorf("%w: spiral pitch %g", ErrNonPositive, spiralPitch)
	}
	if outerRadius := outerDiameter / 2; lobeHeight >= outerRadius {
		return fmt.Errorf("%w: lobe height %g, outer radius %g", ErrLobeTooDeep, lobeHeight, outerRadius)
	}
	return nil
}

// OuterDiameter returns the circumscribed circle diameter D_out.
func (t Tube) OuterDiameter() float64 { return t.outerDiameter }

// NumLobes returns the number of lobes n.
func (t Tube) NumLobes() int { return t.numLobes }

// LobeHeight returns the radial lobe depth h.
func (t Tube) LobeHeight() float64 { return t.lobeHeight }

// SpiralPitch returns the axial length P of one full helical rotation.
func (t Tube) SpiralPitch() float64 { return t.spiralPitch }

// OuterRadius returns D_out/2.
func (t Tube) OuterRadius() float64 { return t.outerRadius }

// InnerDiameter returns the valley diameter D_min = D_out - 2h.
func (t Tube) InnerDiameter() float64 { return t.innerDiameter }

// InnerRadius returns D_min/2.
func (t Tube) InnerRadius() float64 { return t.innerRadius }

// AvgRadius returns the mean of the outer and inner radius.
func (t Tube) AvgRadius() float64 { return t.avgRadius }

// WaveAmplitude returns the profile wave amplitude a = h/2.
func (t Tube) WaveAmplitude() float64 { return t.waveAmplitude }

// String returns a short human readable summary of the four input parameters
// in millimeters with one decimal place.
func (t Tube) String() string {
	return fmt.Sprintf("Tube(outer_diameter=%.1fmm, num_lobes=%d, lobe_height=%.1fmm, spiral_pitch=%.1fmm)",
		t.outerDiameter*1e3, t.numLobes, t.lobeHeight*1e3, t.spiralPitch*1e3)
}
