// Package visibility computes the fringe visibility of an interference signal
// over consecutive windows:
//
//	V = (Imax − Imin) / (Imax + Imin)
package visibility

import (
	"context"
	"errors"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// ErrWindow indicates a window shorter than one sample.
var ErrWindow = errors.New("visibility: window must hold at least one sample")

// WinSize returns the number of samples spanning periods fringes of wavelength
// lambda sampled with step dx.
func WinSize(lambda, dx float64, periods int) int {
	return int(lambda/dx) * periods
}

// Stream reads samples from in and emits the visibility of every full window of
// win samples. A trailing partial window is dropped. The returned channel is
// closed when in is drained or ctx is done. A window shorter than one sample
// returns ErrWindow and no channel.
func Stream(ctx context.Context, in <-chan float64, win int) (<-chan float64, error) {
	if win < 1 {
		return nil, ErrWindow
	}
	out := make(chan float64, 1<<10)
	go func() {
		defer close(out)
		window := make([]float64, 0, win)
		for {
			var value float64
			select {
			case v, ok := <-in:
				if !ok {
					return
				}
				value = v
			case <-ctx.Done():
				return
			}
			window = append(window, value)
			if len(window) < win {
				continue
			}
			select {
			case out <- visibilityOf(window):
			case <-ctx.Done():
				return
			}
			window = window[:0]
		}
	}()
	return out, nil
}

// Compute returns the visibility of every full window of values.
func Compute(ctx context.Context, values []float64, win int) ([]float64, error) {
	valueChan := make(chan float64, 1<<10)
	visibilityChan, err := Stream(ctx, valueChan, win)
	if err != nil {
		return nil, err
	}

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer close(valueChan)
		defer wg.Done()
		for _, value := range values {
			select {
			case valueChan <- value:
			case <-ctx.Done():
				return
			}
		}
	}()

	visibility := make([]float64, 0, len(values)/win)
	for v := range visibilityChan {
		visibility = append(visibility, v)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return visibility, nil
}

// MaxIdx returns the index of the largest value, the zero path difference of a
// visibility curve.
func MaxIdx(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	return floats.MaxIdx(values)
}

func visibilityOf(window []float64) float64 {
	minimum, maximum := floats.Min(window), floats.Max(window)
	return (maximum - minimum) / (maximum + minimum)
}
