// Package sweep evaluates a plane wave along an axis of optical path
// differences.
package sweep

import (
	"errors"

	"gonum.org/v1/gonum/floats"

	"github.com/AnkushinDaniil/planewave/wave"
)

// ErrSamples indicates an axis with fewer than two samples.
var ErrSamples = errors.New("sweep: at least two samples are required")

// Axis returns n evenly spaced path differences from start to stop inclusive.
func Axis(start, stop float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, ErrSamples
	}
	return floats.Span(make([]float64, n), start, stop), nil
}

// Field returns the electric field of w at every opd at time t.
func Field(w wave.Wave, opds []float64, t float64) []complex128 {
	return wave.ElectricFields(w.Amplitude, opds, w.K(), w.Phase, w.W(), t)
}

// Propagated returns field0 propagated by w over every opd at time t.
func Propagated(w wave.Wave, field0 complex128, opds []float64, t float64) []complex128 {
	k, rs := w.K(), w.W()
	out := make([]complex128, len(opds))
	for i, opd := range opds {
		out[i] = wave.PropagatePlaneWave(field0, opd, k, rs, t)
	}
	return out
}
