package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/async"
)

func TestAsync_Result(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 21, func(_ context.Context, v int) (int, error) {
		return v * 2, nil
	})

	v, err := f.Await()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.True(t, f.IsComplete())
}

func TestAsync_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	f := async.Async(context.Background(), "x", func(context.Context, string) (struct{}, error) {
		return struct{}{}, boom
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, boom)
}

func TestAsync_PanicBecomesError(t *testing.T) {
	t.Parallel()

	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		panic("sender exploded")
	})

	_, err := f.Await()
	require.ErrorIs(t, err, async.ErrPanicked)
	assert.Contains(t, err.Error(), "sender exploded")
}

func TestAsync_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	f := async.Async(ctx, 0, func(context.Context, int) (int, error) {
		called = true
		return 1, nil
	})

	_, err := f.Await()
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	f := async.Async(context.Background(), 0, func(context.Context, int) (int, error) {
		<-release
		return 7, nil
	})
	assert.False(t, f.IsComplete())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.AwaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("future did not complete")
	}
	v, err := f.AwaitContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

