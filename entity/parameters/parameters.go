package parameters

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AnkushinDaniil/planewave/entity/format"
	"github.com/AnkushinDaniil/planewave/entity/mode"
	"github.com/AnkushinDaniil/planewave/wave"
)

var (
	ErrWavelength  = errors.New("parameters: wavelength must be positive")
	ErrSamples     = errors.New("parameters: at least two samples are required")
	ErrRange       = errors.New("parameters: path difference range must be increasing")
	ErrReflectance = errors.New("parameters: reflectance must be in [0, 1]")
	ErrPeriods     = errors.New("parameters: period number must be positive")
)

type Parameters struct {
	Mode         mode.Mode     `yaml:"mode"`
	Format       format.Format `yaml:"format"`
	Wave         wave.Wave     `yaml:"wave"`
	From         float64       `yaml:"from"` // mm
	To           float64       `yaml:"to"`   // mm
	Samples      int           `yaml:"samples"`
	Time         float64       `yaml:"time"` // s
	Reflectance  float64       `yaml:"reflectance"`
	PeriodNumber int           `yaml:"periods"`
	Verbose      bool          `yaml:"verbose"`
}

// Default returns a 1550 nm source swept over 10 µm of path difference.
func Default() *Parameters {
	return &Parameters{
		Mode:   mode.Field,
		Format: format.HTML,
		Wave: wave.Wave{
			Wavelength: 1550e-6,
			Amplitude:  1,
			Speed:      wave.LightSpeed,
		},
		From:         1,
		To:           1.01,
		Samples:      2000,
		Reflectance:  0.5,
		PeriodNumber: 1,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Parameters, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameters: %w", err)
	}
	p := Default()
	if err := yaml.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("failed to decode parameters: %w", err)
	}
	return p, nil
}

func (p *Parameters) Validate() error {
	switch {
	case !(p.Wave.Wavelength > 0):
		return ErrWavelength
	case p.Samples < 2:
		return ErrSamples
	case !(p.From < p.To):
		return ErrRange
	case !(p.Reflectance >= 0 && p.Reflectance <= 1):
		return ErrReflectance
	case p.PeriodNumber < 1:
		return ErrPeriods
	}
	return nil
}

// DeltaX returns the path difference step between two samples.
func (p *Parameters) DeltaX() float64 {
	return (p.To - p.From) / float64(p.Samples-1)
}
