// Package shutdown carries the interrupt flag shared between the signal
// handler and the event loop.
package shutdown

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// Flag is set at most once and read many times.
type Flag struct {
	requested atomic.Bool
	stop      chan struct{}
	detached  chan struct{}
}

// New returns an unset flag with no signal handler attached.
func New() *Flag {
	return &Flag{stop: make(chan struct{}), detached: make(chan struct{})}
}

// Trigger sets the flag. Later calls are no-ops.
func (f *Flag) Trigger() {
	f.requested.Store(true)
}

// Requested reports whether Trigger has been called.
func (f *Flag) Requested() bool {
	return f.requested.Load()
}

// Install routes the first os.Interrupt to Trigger. The handler detaches
// after that signal or when Stop is called, whichever comes first, so a
// second interrupt gets the default action and terminates the process.
// The handler goroutine does nothing except set the flag. Install may be
// called at most once per Flag.
func (f *Flag) Install() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	go func() {
		defer close(f.detached)
		defer signal.Stop(ch)
		select {
		case <-ch:
			f.Trigger()
		case <-f.stop:
		}
	}()
}

// Stop detaches the signal handler installed by Install.
func (f *Flag) Stop() {
	select {
	case <-f.stop:
	default:
		close(f.stop)
	}
}
