// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/iox"
)

// Poll is the non-blocking observation boundary. It returns
// iox.ErrWouldBlock while f is pending, (value, nil) once fulfilled, and
// (nil, reason-as-error) once rejected. Reasons that implement error are
// returned unwrapped; other reasons arrive as *RejectionError.
//
// Lock-free: a settled state published by the settlement CAS guarantees
// the value is visible.
func (f *Future) Poll() (any, error) {
	switch State(f.state.Load()) {
	case Pending:
		return nil, iox.ErrWouldBlock
	case Fulfilled:
		return f.value, nil
	default:
		return nil, reasonError(f.value)
	}
}

// Wait blocks until f settles, spinning past the pending boundary with
// adaptive backoff (iox.Backoff). Settlement progress must come from
// another goroutine (a timer callback or a concurrent settler); waiting on
// a future that only the calling goroutine could settle deadlocks, exactly
// like receiving on a channel nobody sends to.
func (f *Future) Wait() (any, error) {
	var bo iox.Backoff
	for {
		v, err := f.Poll()
		if !iox.IsWouldBlock(err) {
			return v, err
		}
		bo.Wait()
	}
}

// wait blocks like Wait but returns the raw settlement pair, for handlers
// that must forward the opaque reason rather than an error adapter.
func (f *Future) wait() (State, any) {
	var bo iox.Backoff
	for {
		st := State(f.state.Load())
		if st != Pending {
			return st, f.value
		}
		bo.Wait()
	}
}
