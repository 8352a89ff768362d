package entity

import (
	"errors"

	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/AnkushinDaniil/planewave/visibility"
)

// Line is a named series sampled along the path difference axis.
type Line struct {
	name   string
	values []float64
	data   []opts.LineData
}

func NewLine(name string, values []float64) (*Line, error) {
	if name == "" {
		return nil, errors.New("name is empty")
	}
	if len(values) == 0 {
		return nil, errors.New("line is empty")
	}
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return &Line{name: name, values: values, data: data}, nil
}

func (l *Line) Name() string {
	return l.name
}

func (l *Line) Data() []opts.LineData {
	return l.data
}

func (l *Line) Values() []float64 {
	return l.values
}

// GetZeroIdx returns the index of the largest sample.
func (l *Line) GetZeroIdx() int {
	return visibility.MaxIdx(l.values)
}
