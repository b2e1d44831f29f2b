// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// State is the settlement state of a Future.
type State uint32

const (
	// Pending means the future has not settled yet.
	Pending State = iota
	// Fulfilled means the future settled with a success value.
	Fulfilled
	// Rejected means the future settled with a failure reason.
	Rejected
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	}
	return "invalid"
}

// Future represents a computation that settles exactly once, to either a
// success value or a failure reason. Values and reasons are opaque.
//
// Settlement dispatch is synchronous: a registered callback runs inline
// within the call that settles the future (or inline within Then/Catch if
// the future is already settled). There is no task queue and no tick
// boundary; ordering between independently settled futures is the real-time
// order of their settlements.
//
// The state transition is compare-and-swap guarded because timer callbacks
// (Delay, Timeout, Retry) settle futures from timer goroutines, so
// settlement may race with user-goroutine settlement.
type Future struct {
	state atomix.Uint32
	mu    sync.Mutex
	// value holds the success value when Fulfilled, the failure reason
	// when Rejected. Written once, before the state transition publishes
	// it, so lock-free readers that observe a settled state also observe
	// the value.
	value       any
	onFulfilled []callback
	onRejected  []callback
	serial      Serial
}

// Awaitable is the future capability. Exactly one concrete type implements
// it: *Future. The Sequencer uses it to validate suspended values, and
// Then/Catch handlers returning an Awaitable are flattened one level.
type Awaitable interface {
	future() *Future
}

func (f *Future) future() *Future { return f }

// IsFuture reports whether v carries the future capability.
func IsFuture(v any) bool {
	_, ok := v.(Awaitable)
	return ok
}

// newPending constructs an unsettled future with the next serial.
func newPending() *Future {
	return &Future{serial: nextSerial()}
}

// New constructs a pending future and invokes executor immediately and
// synchronously with the two settlement capabilities. The executor's own
// return value (if any) is discarded by construction; a panic in the
// executor is not caught here and propagates to the caller. Combinators
// that wrap user functions guard them themselves.
//
// Both capabilities are idempotent: the first call wins the transition,
// later calls of either are silent no-ops.
func New(executor func(resolve func(any), reject func(any))) *Future {
	f := newPending()
	executor(f.fulfill, f.fail)
	return f
}

// State returns the current settlement state.
func (f *Future) State() State {
	return State(f.state.Load())
}

// Serial returns the serial number assigned to this future.
func (f *Future) Serial() Serial {
	return f.serial
}

// fulfill is the settle-as-fulfilled capability.
func (f *Future) fulfill(v any) {
	var wl worklist
	f.settle(Fulfilled, v, &wl)
	wl.drain()
}

// fail is the settle-as-rejected capability.
func (f *Future) fail(reason any) {
	var wl worklist
	f.settle(Rejected, reason, &wl)
	wl.drain()
}

// settle performs the one-shot Pending→target transition and enqueues the
// matching callback side onto wl in registration order. A future that has
// already left Pending is left untouched: repeated settlement is a silent
// no-op, never an error.
//
// The value is written before the CAS publishes the state so that Poll and
// Wait may read it without the mutex after observing a settled state.
func (f *Future) settle(target State, v any, wl *worklist) {
	f.mu.Lock()
	if State(f.state.Load()) != Pending {
		f.mu.Unlock()
		return
	}
	f.value = v
	f.state.CompareAndSwap(uint32(Pending), uint32(target))
	var cbs []callback
	if target == Fulfilled {
		cbs = f.onFulfilled
	} else {
		cbs = f.onRejected
	}
	f.onFulfilled, f.onRejected = nil, nil
	f.mu.Unlock()
	for _, cb := range cbs {
		wl.push(cb, v)
	}
}

// subscribe registers a continuation pair. If f is still pending both are
// queued; otherwise the matching one is pushed onto wl immediately with
// the stored value. The losing side of a settled future is never invoked.
func (f *Future) subscribe(onFulfilled, onRejected callback, wl *worklist) {
	f.mu.Lock()
	switch State(f.state.Load()) {
	case Pending:
		f.onFulfilled = append(f.onFulfilled, onFulfilled)
		f.onRejected = append(f.onRejected, onRejected)
		f.mu.Unlock()
	case Fulfilled:
		v := f.value
		f.mu.Unlock()
		wl.push(onFulfilled, v)
	default:
		reason := f.value
		f.mu.Unlock()
		wl.push(onRejected, reason)
	}
}

// Then returns a new future derived from f's fulfillment.
//
// If f is already Fulfilled the handler runs synchronously within this
// call; if Pending it is queued; if already Rejected the handler is never
// called and the derived future rejects with f's reason. The handler is
// failure-guarded: a panic rejects the derived future with the panic
// value; a returned Awaitable chains the derived future to its settlement
// (one level of flattening); any other return value fulfills it.
func (f *Future) Then(onFulfilled func(any) any) *Future {
	d := newPending()
	var wl worklist
	f.subscribe(
		func(v any, wl *worklist) { runHandler(onFulfilled, v, d, wl) },
		func(reason any, wl *worklist) { d.settle(Rejected, reason, wl) },
		&wl,
	)
	wl.drain()
	return d
}

// Catch is the rejection-side mirror of Then: the handler runs when f
// rejects, and if f fulfills the derived future fulfills with f's value
// without invoking the handler. The same failure guard and flattening
// rules apply to the handler's outcome.
func (f *Future) Catch(onRejected func(any) any) *Future {
	d := newPending()
	var wl worklist
	f.subscribe(
		func(v any, wl *worklist) { d.settle(Fulfilled, v, wl) },
		func(reason any, wl *worklist) { runHandler(onRejected, reason, d, wl) },
		&wl,
	)
	wl.drain()
	return d
}

// runHandler invokes a user handler under the failure guard and settles d
// with its outcome: panic → rejection, Awaitable → chained settlement,
// anything else → fulfillment.
func runHandler(h func(any) any, arg any, d *Future, wl *worklist) {
	out, panicked, recovered := protect(h, arg)
	if panicked {
		d.settle(Rejected, recovered, wl)
		return
	}
	if aw, ok := out.(Awaitable); ok {
		aw.future().subscribe(
			func(v any, wl *worklist) { d.settle(Fulfilled, v, wl) },
			func(reason any, wl *worklist) { d.settle(Rejected, reason, wl) },
			wl,
		)
		return
	}
	d.settle(Fulfilled, out, wl)
}

// protect calls h(arg), converting a panic into a (panicked, recovered)
// report instead of unwinding past the dispatch loop.
func protect(h func(any) any, arg any) (out any, panicked bool, recovered any) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			recovered = r
		}
	}()
	out = h(arg)
	return
}
