package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	log "github.com/sirupsen/logrus"

	"github.com/AnkushinDaniil/planewave/app"
	"github.com/AnkushinDaniil/planewave/entity/parameters"
)

func main() {
	params, output, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if params.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.New(output, params).Run(ctx); err != nil {
		log.Fatal(err)
	}
}

// parseArgs returns the parameters and the output path. Values from the
// -config file are overridden by flags given on the command line.
func parseArgs(args []string) (*parameters.Parameters, string, error) {
	params := parameters.Default()
	fs, config, output := newFlagSet(params)
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if *config == "" {
		return params, *output, nil
	}

	params, err := parameters.Load(*config)
	if err != nil {
		return nil, "", err
	}
	fs, _, output = newFlagSet(params)
	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("failed to parse flags: %w", err)
	}
	return params, *output, nil
}

func newFlagSet(p *parameters.Parameters) (fs *flag.FlagSet, config, output *string) {
	fs = flag.NewFlagSet("planewave", flag.ContinueOnError)
	config = fs.String("config", "", "YAML parameters file")
	output = fs.String("o", "planewave.html", "output file")
	fs.TextVar(&p.Mode, "mode", p.Mode, "field, intensity, interference or visibility")
	fs.TextVar(&p.Format, "format", p.Format, "html or csv")
	fs.Float64Var(&p.Wave.Wavelength, "lambda", p.Wave.Wavelength, "wavelength, mm")
	fs.Float64Var(&p.Wave.Speed, "c", p.Wave.Speed, "wave speed, mm/s")
	fs.Float64Var(&p.Wave.Amplitude, "amplitude", p.Wave.Amplitude, "wave amplitude")
	fs.Float64Var(&p.Wave.Phase, "phase", p.Wave.Phase, "initial phase, rad")
	fs.Float64Var(&p.From, "from", p.From, "first path difference, mm")
	fs.Float64Var(&p.To, "to", p.To, "last path difference, mm")
	fs.IntVar(&p.Samples, "n", p.Samples, "number of samples")
	fs.Float64Var(&p.Time, "t", p.Time, "time, s")
	fs.IntVar(&p.PeriodNumber, "periods", p.PeriodNumber, "fringe periods per visibility window")
	fs.Float64Var(&p.Reflectance, "r", p.Reflectance, "beam splitter reflectance")
	fs.BoolVar(&p.Verbose, "v", p.Verbose, "debug logging")
	return fs, config, output
}
