package snapshot

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/globe-explorer/internal/render"
	"github.com/ziadkadry99/globe-explorer/internal/states"
	"github.com/ziadkadry99/globe-explorer/internal/theme"
)

func dataset(t *testing.T) *states.Dataset {
	t.Helper()
	ds, err := states.NewDataset([]states.Record{
		{Abbreviation: "CA", Name: "California", Latitude: 36.7, Longitude: -119.4},
		{Abbreviation: "NY", Name: "New York", Latitude: 43.0, Longitude: -75.0},
	})
	require.NoError(t, err)
	return ds
}

func options() Options {
	return Options{Width: 64, Height: 48, Frames: 3, Theme: theme.Default(), Logger: zerolog.Nop()}
}

func TestRun_Frames(t *testing.T) {
	var frames []int
	var first, last bytes.Buffer
	err := Run(context.Background(), dataset(t), options(), func(frame int, c *render.Canvas) error {
		frames = append(frames, frame)
		w, h := c.Size()
		assert.Equal(t, 64, w)
		assert.Equal(t, 48, h)
		switch frame {
		case 1:
			return c.EncodePNG(&first)
		case 3:
			return c.EncodePNG(&last)
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, frames)
	assert.NotZero(t, first.Len())
	assert.NotZero(t, last.Len())
}

func TestRun_InvalidOptions(t *testing.T) {
	for _, mutate := range []func(*Options){
		func(o *Options) { o.Width = 0 },
		func(o *Options) { o.Height = MaxSize + 1 },
		func(o *Options) { o.Frames = 0 },
		func(o *Options) { o.Frames = MaxFrames + 1 },
	} {
		opts := options()
		mutate(&opts)
		err := Run(context.Background(), dataset(t), opts, func(int, *render.Canvas) error { return nil })
		assert.ErrorIs(t, err, ErrInvalidOptions)
	}
}

func TestRun_UnknownSelection(t *testing.T) {
	opts := options()
	opts.Selected = "ZZ"
	err := Run(context.Background(), dataset(t), opts, func(int, *render.Canvas) error { return nil })
	assert.ErrorIs(t, err, states.ErrNotFound)
}

func TestRun_StopsOnCallbackError(t *testing.T) {
	boom := errors.New("disk full")
	calls := 0
	err := Run(context.Background(), dataset(t), options(), func(int, *render.Canvas) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, dataset(t), options(), func(int, *render.Canvas) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}
