package work

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase_BeginTwiceRejected(t *testing.T) {
	t.Parallel()

	b := NewBase("a")
	require.NoError(t, b.Begin())
	assert.True(t, b.IsRunning())

	err := b.Begin()
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	res := b.Finish(nil)
	assert.True(t, res.IsSuccess())
	assert.False(t, b.IsRunning())
	assert.True(t, b.IsSuccess())
	assert.Equal(t, 100.0, b.Progress())
}

func TestBase_ProgressMonotonicAndClamped(t *testing.T) {
	t.Parallel()

	b := NewBase("a")
	require.NoError(t, b.Begin())

	b.SetProgress(40)
	b.SetProgress(20)
	assert.Equal(t, 40.0, b.Progress())

	b.SetProgress(250)
	assert.Equal(t, 100.0, b.Progress())
}

func TestBase_BeginResetsState(t *testing.T) {
	t.Parallel()

	b := NewBase("a")
	require.NoError(t, b.Begin())
	b.Finish(errors.New("boom"))
	assert.False(t, b.IsSuccess())
	assert.Equal(t, 100.0, b.Progress())

	require.NoError(t, b.Begin())
	assert.Equal(t, 0.0, b.Progress())
	assert.False(t, b.IsSuccess())
	b.Finish(nil)
	assert.True(t, b.IsSuccess())
}

func TestBase_DoneClosedPerRun(t *testing.T) {
	t.Parallel()

	b := NewBase("a")
	first := b.Done()

	require.NoError(t, b.Begin())
	assert.Equal(t, first, b.Done())
	b.Finish(nil)

	select {
	case <-first:
	case <-time.After(time.Second):
		t.Fatal("done channel not closed after finish")
	}

	require.NoError(t, b.Begin())
	second := b.Done()
	select {
	case <-second:
		t.Fatal("done channel of a new run must be open")
	default:
	}
	b.Finish(nil)
	<-second
}

func TestBase_FinishOutsideRunIsNoop(t *testing.T) {
	t.Parallel()

	b := NewBase("a")
	res := b.Finish(errors.New("ignored"))
	assert.True(t, res.IsEmpty())
	assert.False(t, b.IsRunning())
}

func TestBase_StartRecoversPanic(t *testing.T) {
	t.Parallel()

	b := NewBase("a")
	started := b.Start(context.Background(), false, func(ctx context.Context) error {
		panic("kaboom")
	})

	assert.True(t, started)
	assert.False(t, b.IsSuccess())
	assert.ErrorIs(t, b.Result().Err(), ErrPanicked)
}
