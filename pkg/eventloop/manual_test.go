package eventloop_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/contactform/pkg/eventloop"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestManual_AfterFuncOrder(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	var got []string

	m.AfterFunc(300*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(100*time.Millisecond, func() { got = append(got, "b") })

	m.Advance(99 * time.Millisecond)
	assert.Empty(t, got)

	m.Advance(time.Millisecond)
	assert.Equal(t, []string{"a", "b"}, got)

	m.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, epoch.Add(1100*time.Millisecond), m.Now())
}

func TestManual_TimersScheduledWhileAdvancing(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	var at []time.Duration

	m.AfterFunc(time.Second, func() {
		at = append(at, m.Now().Sub(epoch))
		m.AfterFunc(time.Second, func() {
			at = append(at, m.Now().Sub(epoch))
		})
	})

	m.Advance(5 * time.Second)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, at)
}

func TestManual_Stop(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	ran := false
	timer := m.AfterFunc(time.Second, func() { ran = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	assert.Zero(t, m.Pending())

	m.Advance(2 * time.Second)
	assert.False(t, ran)
}

func TestManual_StopAfterRun(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	timer := m.AfterFunc(time.Second, func() {})

	m.Advance(time.Second)
	assert.False(t, timer.Stop())
}

func TestManual_GoWithSleep(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	var finishedAt time.Time

	m.Go(func() func() {
		err := m.Sleep(context.Background(), 2*time.Second)
		return func() {
			require.NoError(t, err)
			finishedAt = m.Now()
		}
	})

	m.Flush()
	assert.True(t, finishedAt.IsZero(), "work must still be sleeping")

	m.Advance(1999 * time.Millisecond)
	assert.True(t, finishedAt.IsZero())

	m.Advance(time.Millisecond)
	assert.Equal(t, epoch.Add(2*time.Second), finishedAt)
}

func TestManual_GoImmediate(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	done := false
	m.Go(func() func() {
		return func() { done = true }
	})

	m.Flush()
	assert.True(t, done)
}

func TestManual_SleepCancelled(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	ctx, cancel := context.WithCancel(context.Background())
	var err error

	m.Go(func() func() {
		e := m.Sleep(ctx, time.Hour)
		return func() { err = e }
	})
	m.Flush()

	cancel()
	require.Eventually(t, func() bool {
		m.Flush()
		return err != nil
	}, time.Second, time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, m.Pending())
}

func TestManual_PostFromCallback(t *testing.T) {
	t.Parallel()

	m := eventloop.NewManual(epoch)
	var got []int
	m.Post(func() {
		got = append(got, 1)
		m.Post(func() { got = append(got, 3) })
	})
	m.Post(func() { got = append(got, 2) })

	m.Flush()
	assert.Equal(t, []int{1, 2, 3}, got)
}
