package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/planewave/entity"
	"github.com/AnkushinDaniil/planewave/entity/format"
	"github.com/AnkushinDaniil/planewave/entity/mode"
	"github.com/AnkushinDaniil/planewave/entity/parameters"
	"github.com/AnkushinDaniil/planewave/interference"
	"github.com/AnkushinDaniil/planewave/sweep"
	"github.com/AnkushinDaniil/planewave/visibility"
	"github.com/AnkushinDaniil/planewave/wave"
)

type App struct {
	Output string
	Params *parameters.Parameters
}

func New(output string, params *parameters.Parameters) *App {
	return &App{
		Output: output,
		Params: params,
	}
}

func (a *App) Run(ctx context.Context) error {
	appTime := time.Now()
	defer func() {
		log.WithField("time", time.Since(appTime)).Debug("App finished")
	}()
	log.WithFields(log.Fields{
		"output":     a.Output,
		"mode":       a.Params.Mode,
		"format":     a.Params.Format,
		"wavelength": a.Params.Wave.Wavelength,
		"speed":      a.Params.Wave.Speed,
		"from":       a.Params.From,
		"to":         a.Params.To,
		"samples":    a.Params.Samples,
		"time":       a.Params.Time,
	}).Debug("App started")

	if err := a.Params.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	x, lines, err := a.compute(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(a.Output)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	renderTime := time.Now()
	switch a.Params.Format {
	case format.HTML:
		line := a.createChart(x, lines)
		log.Info("Chart created")
		if err := line.Render(f); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	case format.Csv:
		if err := writeCSV(f, x, lines); err != nil {
			return fmt.Errorf("failed to write csv: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", a.Params.Format)
	}
	log.WithField("time", time.Since(renderTime)).Info("Output rendered and saved")

	return nil
}

// compute returns the x axis and the series selected by the mode.
func (a *App) compute(ctx context.Context) ([]float64, []*entity.Line, error) {
	p := a.Params
	opds, err := sweep.Axis(p.From, p.To, p.Samples)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build axis: %w", err)
	}

	type series struct {
		name   string
		values []float64
	}
	var all []series
	add := func(name string, values []float64) {
		all = append(all, series{name: name, values: values})
	}
	x := opds

	switch p.Mode {
	case mode.Field:
		fields := sweep.Field(p.Wave, opds, p.Time)
		add("Amplitude", wave.Amplitudes(fields))
		add("Phase, deg", wave.Phases(fields, true))
	case mode.Intensity:
		add("Intensity", wave.Intensities(sweep.Field(p.Wave, opds, p.Time)))
	case mode.Interference:
		pattern, err := interference.Pattern(p.Wave, opds, p.Reflectance)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute interference: %w", err)
		}
		add("Interference", pattern)
	case mode.Visibility:
		pattern, err := interference.Pattern(p.Wave, opds, p.Reflectance)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute interference: %w", err)
		}
		winSize := visibility.WinSize(p.Wave.Wavelength, p.DeltaX(), p.PeriodNumber)
		log.WithField("winSize", winSize).Debug("Computing visibility")
		v, err := visibility.Compute(ctx, pattern, winSize)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to compute visibility: %w", err)
		}
		if len(v) == 0 {
			return nil, nil, fmt.Errorf("sweep is shorter than one window of %d samples", winSize)
		}
		add("Visibility", v)
		x = centeredAxis(v, float64(winSize)*p.DeltaX())
	default:
		return nil, nil, fmt.Errorf("unsupported mode: %s", p.Mode)
	}

	lines := make([]*entity.Line, 0, len(all))
	for _, s := range all {
		log.WithField("name", s.name).Debug("Creating line")
		line, err := entity.NewLine(s.name, s.values)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create line: %w", err)
		}
		lines = append(lines, line)
	}
	return x, lines, nil
}

// centeredAxis puts zero path difference at the visibility maximum.
func centeredAxis(v []float64, dx float64) []float64 {
	zeroIdx := visibility.MaxIdx(v)
	x := make([]float64, len(v))
	for i := range v {
		x[i] = float64(i-zeroIdx) * dx
	}
	return x
}

func writeCSV(w io.Writer, x []float64, lines []*entity.Line) error {
	cw := csv.NewWriter(w)
	header := make([]string, 0, len(lines)+1)
	header = append(header, "opd")
	for _, line := range lines {
		header = append(header, line.Name())
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for i := range x {
		record[0] = strconv.FormatFloat(x[i], 'g', -1, 64)
		for j, line := range lines {
			record[j+1] = strconv.FormatFloat(line.Values()[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (a *App) createChart(x []float64, lines []*entity.Line) *charts.Line {
	startTime := time.Now()
	defer func() {
		log.WithFields(log.Fields{
			"time":  time.Since(startTime),
			"lines": len(lines),
		}).Debug("Creating chart")
	}()
	line := charts.NewLine()
	line.SetGlobalOptions(chartOptions(
		fmt.Sprintf("Plane wave %s, λ = %g mm", a.Params.Mode, a.Params.Wave.Wavelength),
		"Optical path difference, mm",
		a.Params.Mode.String(),
	)...)

	line.SetXAxis(x)
	for _, l := range lines {
		line.AddSeries(l.Name(), l.Data())
	}
	return line
}

// chartOptions returns a zoomable line chart layout with a scrolling legend
// and a cross-hair tooltip.
func chartOptions(title, xName, yName string) []charts.GlobalOpts {
	zoom := func(kind string) charts.GlobalOpts {
		return charts.WithDataZoomOpts(opts.DataZoom{Type: kind, Start: 0, End: 100, XAxisIndex: []int{0}})
	}
	grid := &opts.SplitLine{Show: opts.Bool(true)}

	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       title,
		}),
		zoom("slider"),
		zoom("inside"),
		charts.WithLegendOpts(opts.Legend{
			Show:         opts.Bool(true),
			Type:         "scroll",
			SelectedMode: "multiple",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:        opts.Bool(true),
			Trigger:     "axis",
			AxisPointer: &opts.AxisPointer{Type: "cross", Snap: opts.Bool(true)},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true), Type: "png", Title: "Save as image"},
				DataView:    &opts.ToolBoxFeatureDataView{Show: opts.Bool(true), Title: "Data view"},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true), Title: "Reset"},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, SplitLine: grid}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value", Scale: opts.Bool(true), SplitLine: grid}),
	}
}
