// Package wave implements the closed-form algebra of monochromatic plane waves
// used by the interferometer simulations.
//
// A field is a complex amplitude A·e^(jθ). The package computes the wave
// parameters of a source (wavenumber k and rotation speed w), advances an
// existing field over an optical path difference (OPD), synthesizes the field of
// a single plane wave and reduces a field to its phase, amplitude and intensity.
//
// Every function exists in a scalar form and, where it makes sense, in a slice
// form with a plural name that applies the scalar form element-wise and returns
// a new slice:
//
//	k := wave.Wavenumber(1550e-6)                // wavelength in mm
//	w := wave.RotationSpeed(1550e-6, wave.LightSpeed)
//	f := wave.ElectricField(1, 10, k, 0, w, 0)
//	I := wave.Intensity(f)
//
// Lengths are in millimeters and time in seconds. Nothing is validated: a zero
// wavelength or a zero OPD gives an infinite or NaN result, following IEEE 754,
// and it is up to the caller to check the inputs.
//
// All functions are pure and safe for concurrent use.
package wave
