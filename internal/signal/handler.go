// Package signal cancels a command's context on SIGINT or SIGTERM and
// remembers which signal arrived, so the CLI can report an interrupted run.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// ErrInterrupted is the cancellation cause recorded when a signal arrives.
var ErrInterrupted = errors.New("interrupted")

// Watcher cancels its context when SIGINT or SIGTERM is received.
type Watcher struct {
	ctx      context.Context //nolint:containedctx // the watcher owns this context's lifecycle
	cancel   context.CancelCauseFunc
	sigChan  chan os.Signal
	done     chan struct{}
	mu       sync.Mutex
	received os.Signal
	once     sync.Once
	stopOnce sync.Once
}

// Watch starts listening for SIGINT and SIGTERM. Call Stop when the command
// finishes.
//
//	w := signal.Watch(ctx)
//	defer w.Stop()
//	err := run(w.Context())
//	if sig, ok := w.Received(); ok { ... }
func Watch(parent context.Context) *Watcher {
	w := newWatcher(parent)
	signal.Notify(w.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go w.listen()
	return w
}

func newWatcher(parent context.Context) *Watcher {
	ctx, cancel := context.WithCancelCause(parent)
	return &Watcher{
		ctx:    ctx,
		cancel: cancel,
		// Buffered so signal.Notify never drops the first signal.
		sigChan: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
}

// Context returns the context canceled on the first signal. Its
// context.Cause wraps ErrInterrupted.
func (w *Watcher) Context() context.Context {
	return w.ctx
}

// Received returns the first signal seen, if any.
func (w *Watcher) Received() (os.Signal, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.received, w.received != nil
}

// Stop stops listening and releases the context. It is idempotent.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		signal.Stop(w.sigChan)
		close(w.done)
		w.cancel(context.Canceled)
	})
}

// handle records sig and cancels the context. Only the first call has effect.
func (w *Watcher) handle(sig os.Signal) {
	w.once.Do(func() {
		w.mu.Lock()
		w.received = sig
		w.mu.Unlock()
		w.cancel(fmt.Errorf("%w by %s", ErrInterrupted, sig))
	})
}

// listen runs until Stop is called or the parent context ends. Later signals
// are drained and ignored.
func (w *Watcher) listen() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.done:
			return
		case sig := <-w.sigChan:
			w.handle(sig)
		}
	}
}
