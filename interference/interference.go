// Package interference superposes the two arms of a Michelson interferometer
// built from plane waves.
package interference

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/AnkushinDaniil/planewave/wave"
)

// ErrReflectance indicates a beam splitter reflectance outside [0, 1].
var ErrReflectance = errors.New("interference: reflectance must be in [0, 1]")

// Arms returns the fields of the reference and the measuring arm for every opd
// at time t. The beam splitter sends the share r of the intensity to the
// reference arm, which has zero path difference.
func Arms(w wave.Wave, opds []float64, r, t float64) (ref, meas []complex128, err error) {
	if r < 0 || r > 1 || math.IsNaN(r) {
		return nil, nil, ErrReflectance
	}
	k, rs := w.K(), w.W()
	source := cmplx.Rect(w.Amplitude, w.Phase)
	refField := wave.PropagatePlaneWave(source*complex(math.Sqrt(r), 0), 0, k, rs, t)
	measField := source * complex(math.Sqrt(1-r), 0)

	ref = make([]complex128, len(opds))
	meas = make([]complex128, len(opds))
	for i, opd := range opds {
		ref[i] = refField
		meas[i] = wave.PropagatePlaneWave(measField, opd, k, rs, t)
	}
	return ref, meas, nil
}

// Sum returns the element-wise sum of two fields of equal length.
func Sum(a, b []complex128) []complex128 {
	out := make([]complex128, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Pattern returns the interference intensity recorded at every opd.
func Pattern(w wave.Wave, opds []float64, r float64) ([]float64, error) {
	ref, meas, err := Arms(w, opds, r, 0)
	if err != nil {
		return nil, err
	}
	return wave.Intensities(Sum(ref, meas)), nil
}
