// File: closex.go
// Title: Dispose-Once Guards
// Description: Implements exactly-once disposal semantics for cleanup
//              callbacks and io.Closer values. A single atomic swap (the
//              lock-free equivalent of an exchange instruction) decides
//              the winner when Close races from multiple goroutines; the
//              callback runs at most once, and later calls return nil
//              without blocking.
// Author: mbeckett
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package closex

import (
	"errors"
	"io"
	"sync/atomic"
)

// Guard arbitrates exactly-once execution of a cleanup callback. The zero
// value is ready to use. A Guard must not be copied after first use.
type Guard struct {
	done atomic.Bool
}

// Do runs fn if no callback has run under this guard yet, and reports
// whether fn ran. Concurrent callers race on a single atomic swap; exactly
// one wins. A nil fn still claims the guard.
func (g *Guard) Do(fn func()) bool {
	if g.done.Swap(true) {
		return false
	}
	if fn != nil {
		fn()
	}
	return true
}

// Done reports whether the guard has been claimed.
func (g *Guard) Done() bool {
	return g.done.Load()
}

// onceCloser wraps a close callback behind a Guard.
type onceCloser struct {
	guard Guard
	fn    func() error
}

// OnceFunc returns an io.Closer that invokes fn on the first Close call
// only. Later calls, including concurrent ones, return nil. Losers of a
// concurrent race do not wait for the winner's callback to finish; see
// Guard for the arbitration rule.
func OnceFunc(fn func() error) io.Closer {
	return &onceCloser{fn: fn}
}

// OnceCloser wraps c so that its Close method is invoked at most once.
// A nil c yields a closer that does nothing.
func OnceCloser(c io.Closer) io.Closer {
	if c == nil {
		return OnceFunc(nil)
	}
	return OnceFunc(c.Close)
}

// Close implements io.Closer.
func (c *onceCloser) Close() error {
	var err error
	c.guard.Do(func() {
		if c.fn != nil {
			err = c.fn()
		}
	})
	return err
}

// CloseAll closes every non-nil closer in order and returns the joined
// errors. All closers are attempted even when earlier ones fail.
func CloseAll(closers ...io.Closer) error {
	var errs []error
	for _, c := range closers {
		if c == nil {
			continue
		}
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
