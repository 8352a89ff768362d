package wave

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

const degPerRad = 180 / math.Pi

// PropagatePlaneWave advances field over the optical path difference opd (mm) and
// the time t (s):
//
//	field·e^(j(−wt + opd·k))
//
// The multiplier has unit modulus, so the amplitude of the field is kept.
func PropagatePlaneWave(field complex128, opd, k, w, t float64) complex128 {
	return field * cmplx.Exp(complex(0, -w*t+opd*k))
}

// PropagatePlaneWaves propagates every field by the same opd and t.
func PropagatePlaneWaves(fields []complex128, opd, k, w, t float64) []complex128 {
	rotor := cmplx.Exp(complex(0, -w*t+opd*k))
	out := make([]complex128, len(fields))
	for i, field := range fields {
		out[i] = field * rotor
	}
	return out
}

// ElectricField returns the state of a plane wave of the given amplitude at the
// distance opd (mm) and time t (s):
//
//	amplitude·e^(j(−wt + opd·k + phase)) / opd²
//
// opd must not be zero.
func ElectricField(amplitude, opd, k, phase, w, t float64) complex128 {
	return complex(amplitude, 0) * cmplx.Exp(complex(0, -w*t+opd*k+phase)) / complex(opd*opd, 0)
}

// ElectricFields evaluates ElectricField at every opd.
func ElectricFields(amplitude float64, opds []float64, k, phase, w, t float64) []complex128 {
	out := make([]complex128, len(opds))
	for i, opd := range opds {
		out[i] = ElectricField(amplitude, opd, k, phase, w, t)
	}
	return out
}

// Phase returns the principal argument of field in (−π, π], or in (−180, 180]
// when deg is set. The phase of zero is zero.
//
// The sign of a zero imaginary part is kept: a field on the negative real axis
// with imaginary part −0 has phase −π (−180).
func Phase(field complex128, deg bool) float64 {
	phase := cmplx.Phase(field)
	if deg {
		phase *= degPerRad
	}
	return phase
}

// Phases returns the phase of every field.
func Phases(fields []complex128, deg bool) []float64 {
	out := make([]float64, len(fields))
	for i, field := range fields {
		out[i] = cmplx.Phase(field)
	}
	if deg {
		floats.Scale(degPerRad, out)
	}
	return out
}

// Amplitude returns |field|.
func Amplitude(field complex128) float64 {
	return cmplx.Abs(field)
}

// Amplitudes returns |field| for every field.
func Amplitudes(fields []complex128) []float64 {
	out := make([]float64, len(fields))
	for i, field := range fields {
		out[i] = cmplx.Abs(field)
	}
	return out
}

// Intensity returns |field|².
func Intensity(field complex128) float64 {
	a := cmplx.Abs(field)
	return a * a
}

// Intensities returns |field|² for every field.
func Intensities(fields []complex128) []float64 {
	out := Amplitudes(fields)
	floats.Mul(out, out)
	return out
}
