package twistedtube

import (
	"math"
	"testing"
)

func TestHelicalLengthFactorReference(t *testing.T) {
	tube := mustTube(t, refOuterDiameter, refLobes, refLobeHeight, refPitch)
	want := math.Sqrt(1 + math.Pow(2*math.Pi*0.017/0.0065, 2))
	if got := tube.HelicalLengthFactor(); math.Abs(got-want) > 1e-12 {
		t.Errorf("factor %g, want %g", got, want)
	}
	// ~16.46 for this geometry.
	if got := tube.HelicalLengthFactor(); got < 16.4 || got > 16.5 {
		t.Errorf("factor %g outside expected range", got)
	}
	wantLen := refPitch * tube.HelicalLengthFactor()
	if got := tube.HelicalPathLength(); got != wantLen {
		t.Errorf("path length %g, want %g", got, wantLen)
	}
}

func TestHelicalLengthFactorMonotonic(t *testing.T) {
	// A tighter twist (smaller pitch) means a longer true path.
	pitches := []float64{1, 0.1, 0.01, 0.005, 0.001}
	prev := 0.0
	for i, p := range pitches {
		tube := mustTube(t, refOuterDiameter, refLobes, refLobeHeight, p)
		factor := tube.HelicalLengthFactor()
		if factor <= 1 {
			t.Errorf("pitch %g: factor %g not above 1", p, factor)
		}
		if i > 0 && factor <= prev {
			t.Errorf("pitch %g: factor %g not above factor %g of looser pitch", p, factor, prev)
		}
		prev = factor
	}
}

func TestHelicalLengthFactorLoosePitchLimit(t *testing.T) {
	tube := mustTube(t, refOuterDiameter, refLobes, refLobeHeight, 1e9)
	if factor := tube.HelicalLengthFactor(); factor-1 > 1e-9 {
		t.Errorf("factor %g does not approach 1 for a near-straight tube", factor)
	}
}

func TestHelicalLengthFactorZeroPitchGuard(t *testing.T) {
	// The zero value cannot be produced by New; the factor must still be
	// defined for it.
	var tube Tube
	if got := tube.HelicalLengthFactor(); got != 1.0 {
		t.Errorf("zero-pitch factor %g, want exactly 1", got)
	}
	if got := tube.HelicalPathLength(); got != 0 {
		t.Errorf("zero-pitch path length %g, want 0", got)
	}
}
