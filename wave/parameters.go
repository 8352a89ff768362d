package wave

import "math"

// LightSpeed is the speed of light in vacuum in mm/s, the default wave speed.
const LightSpeed = 3e11

// Wavenumber returns k = 2π/wavelength.
func Wavenumber(wavelength float64) float64 {
	return 2 * math.Pi / wavelength
}

// Wavenumbers returns the wavenumber of every wavelength.
func Wavenumbers(wavelengths []float64) []float64 {
	ks := make([]float64, len(wavelengths))
	for i, wavelength := range wavelengths {
		ks[i] = Wavenumber(wavelength)
	}
	return ks
}

// RotationSpeed returns the rotation speed w of A·e^(j(wt+φ)) for a wave of the
// given wavelength travelling at speed c (mm/s).
//
// The frequency is taken as f = c·wavelength and w = 2πf.
func RotationSpeed(wavelength, c float64) float64 {
	f := c * wavelength
	return 2 * math.Pi * f
}
