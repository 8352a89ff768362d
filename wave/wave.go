package wave

// Wave describes a monochromatic plane-wave source.
//
// A zero Speed means LightSpeed.
type Wave struct {
	Wavelength float64 `yaml:"wavelength"` // mm
	Amplitude  float64 `yaml:"amplitude"`
	Phase      float64 `yaml:"phase"` // initial phase, rad
	Speed      float64 `yaml:"speed"` // mm/s
}

// K returns the wavenumber of the wave.
func (w Wave) K() float64 {
	return Wavenumber(w.Wavelength)
}

// W returns the rotation speed of the wave.
func (w Wave) W() float64 {
	c := w.Speed
	if c == 0 {
		c = LightSpeed
	}
	return RotationSpeed(w.Wavelength, c)
}

// Field returns the electric field of the wave at opd and time t.
func (w Wave) Field(opd, t float64) complex128 {
	return ElectricField(w.Amplitude, opd, w.K(), w.Phase, w.W(), t)
}

// Propagate advances field by opd and t using the wave's k and w.
func (w Wave) Propagate(field complex128, opd, t float64) complex128 {
	return PropagatePlaneWave(field, opd, w.K(), w.W(), t)
}
