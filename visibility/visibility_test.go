package visibility_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnkushinDaniil/planewave/interference"
	"github.com/AnkushinDaniil/planewave/sweep"
	"github.com/AnkushinDaniil/planewave/visibility"
	"github.com/AnkushinDaniil/planewave/wave"
)

func TestWinSize(t *testing.T) {
	assert.Equal(t, 8, visibility.WinSize(1, 0.25, 2))
	assert.Equal(t, 4, visibility.WinSize(1, 0.25, 1))
}

func TestCompute(t *testing.T) {
	got, err := visibility.Compute(context.Background(), []float64{1, 3, 3, 1, 0, 2, 5}, 2)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5, 1}, got, 1e-12, "trailing partial window is dropped")
}

func TestCompute_BadWindow(t *testing.T) {
	_, err := visibility.Compute(context.Background(), []float64{1, 2}, 0)
	assert.ErrorIs(t, err, visibility.ErrWindow)
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := visibility.Compute(ctx, make([]float64, 1<<12), 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStream(t *testing.T) {
	in := make(chan float64, 5)
	for _, v := range []float64{1, 3, 0, 2, 7} {
		in <- v
	}
	close(in)

	out, err := visibility.Stream(context.Background(), in, 2)
	require.NoError(t, err)
	var got []float64
	for v := range out {
		got = append(got, v)
	}
	assert.InDeltaSlice(t, []float64{0.5, 1}, got, 1e-12)
}

func TestStream_BadWindow(t *testing.T) {
	in := make(chan float64, 1)
	in <- 1
	for _, win := range []int{0, -1} {
		out, err := visibility.Stream(context.Background(), in, win)
		assert.ErrorIs(t, err, visibility.ErrWindow, "win=%d", win)
		assert.Nil(t, out)
	}
}

func TestStream_CancelledMidStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// in is never closed: only the cancellation can end the stream.
	in := make(chan float64)
	out, err := visibility.Stream(ctx, in, 2)
	require.NoError(t, err)

	in <- 1
	in <- 3
	select {
	case v := <-out:
		assert.InDelta(t, 0.5, v, 1e-12)
	case <-time.After(time.Second):
		t.Fatal("no visibility for a full window")
	}

	cancel()
	done := make(chan int)
	go func() {
		n := 0
		for range out {
			n++
		}
		done <- n
	}()
	select {
	case n := <-done:
		assert.Zero(t, n, "no values after cancellation")
	case <-time.After(time.Second):
		t.Fatal("stream was not closed after cancellation")
	}
}

func TestCompute_Interferogram(t *testing.T) {
	w := wave.Wave{Wavelength: 1, Amplitude: 1}
	opds, err := sweep.Axis(0, 4, 33)
	require.NoError(t, err)
	win := visibility.WinSize(w.Wavelength, opds[1]-opds[0], 1)
	require.Equal(t, 8, win)

	for _, tc := range []struct {
		r, want float64
	}{
		{r: 0.5, want: 1},
		{r: 0.2, want: 0.8},
	} {
		pattern, err := interference.Pattern(w, opds, tc.r)
		require.NoError(t, err)
		got, err := visibility.Compute(context.Background(), pattern, win)
		require.NoError(t, err)
		require.Len(t, got, 4)
		for _, v := range got {
			assert.InDelta(t, tc.want, v, 1e-9, "r=%g", tc.r)
		}
	}
}

func TestMaxIdx(t *testing.T) {
	assert.Equal(t, 2, visibility.MaxIdx([]float64{0.1, 0.5, 0.9, 0.2}))
	assert.Equal(t, 0, visibility.MaxIdx(nil))
}
