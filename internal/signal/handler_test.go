package signal

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalCancelsWithCause(t *testing.T) {
	t.Parallel()

	w := newWatcher(context.Background())
	defer w.Stop()

	w.handle(syscall.SIGINT)

	select {
	case <-w.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}
	require.ErrorIs(t, context.Cause(w.Context()), ErrInterrupted)
	assert.Contains(t, context.Cause(w.Context()).Error(), "interrupt")

	sig, ok := w.Received()
	assert.True(t, ok)
	assert.Equal(t, os.Signal(syscall.SIGINT), sig)
}

func TestWatcher_OnlyFirstSignalRecorded(t *testing.T) {
	t.Parallel()

	w := newWatcher(context.Background())
	defer w.Stop()

	w.handle(syscall.SIGTERM)
	w.handle(syscall.SIGINT)

	sig, ok := w.Received()
	assert.True(t, ok)
	assert.Equal(t, os.Signal(syscall.SIGTERM), sig)
}

func TestWatcher_ListenDeliversSignals(t *testing.T) {
	t.Parallel()

	w := newWatcher(context.Background())
	defer w.Stop()
	go w.listen()

	w.sigChan <- syscall.SIGTERM

	select {
	case <-w.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled")
	}
	_, ok := w.Received()
	assert.True(t, ok)
}

func TestWatcher_StopWithoutSignal(t *testing.T) {
	t.Parallel()

	w := newWatcher(context.Background())
	require.NoError(t, w.Context().Err())

	w.Stop()
	w.Stop()

	require.ErrorIs(t, w.Context().Err(), context.Canceled)
	assert.NotErrorIs(t, context.Cause(w.Context()), ErrInterrupted)
	_, ok := w.Received()
	assert.False(t, ok)
}

func TestWatcher_ParentCancellation(t *testing.T) {
	t.Parallel()

	parent, cancel := context.WithCancel(context.Background())
	w := newWatcher(parent)
	defer w.Stop()
	go w.listen()

	cancel()

	select {
	case <-w.Context().Done():
	case <-time.After(time.Second):
		t.Fatal("context was not canceled with parent")
	}
	_, ok := w.Received()
	assert.False(t, ok)
}

func TestWatch_StopsCleanly(t *testing.T) {
	t.Parallel()

	w := Watch(context.Background())
	require.NoError(t, w.Context().Err())
	w.Stop()
	require.Error(t, w.Context().Err())
}
