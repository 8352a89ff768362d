package sweep_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/planewave/sweep"
	"github.com/AnkushinDaniil/planewave/wave"
)

func TestAxis(t *testing.T) {
	axis, err := sweep.Axis(1, 2, 5)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1.25, 1.5, 1.75, 2}, axis, 1e-12)

	_, err = sweep.Axis(1, 2, 1)
	assert.ErrorIs(t, err, sweep.ErrSamples)
}

func TestField(t *testing.T) {
	w := wave.Wave{Wavelength: 0.5, Amplitude: 4, Speed: 1}
	opds, err := sweep.Axis(1, 2, 3)
	require.NoError(t, err)

	fields := sweep.Field(w, opds, 0)
	require.Len(t, fields, 3)
	for i, opd := range opds {
		assert.Equal(t, w.Field(opd, 0), fields[i])
		assert.InDelta(t, 4/(opd*opd), cmplx.Abs(fields[i]), 1e-12)
	}
}

func TestPropagated(t *testing.T) {
	w := wave.Wave{Wavelength: 0.5, Amplitude: 1, Speed: 1}
	fields := sweep.Propagated(w, 2i, []float64{0, 0.125, 0.25}, 0)
	require.Len(t, fields, 3)
	assert.Equal(t, complex128(2i), fields[0])
	for _, f := range fields {
		assert.InDelta(t, 2, cmplx.Abs(f), 1e-12)
	}
	// a quarter wavelength turns the field by π/2
	assert.InDelta(t, -2, real(fields[1]), 1e-12)
	// half a wavelength turns it by π
	assert.InDelta(t, -2, imag(fields[2]), 1e-12)
}
