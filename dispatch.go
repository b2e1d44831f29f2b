// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

// callback is a settlement continuation. The work list it receives is the
// one currently being drained, so continuations that settle further
// futures extend the drain instead of growing the call stack.
type callback func(v any, wl *worklist)

// job is one queued continuation invocation.
type job struct {
	fn  callback
	arg any
}

// worklist is the iterative dispatch queue for settlement callbacks.
// Draining is FIFO: a future's callbacks run in registration order, and
// callbacks of futures settled during the drain run after them.
//
// Every public entry point that can trigger dispatch (settlement
// capabilities, Then/Catch on a settled future, the Drive loop) owns one
// worklist for the duration of the call, so a chain of N derived futures
// settles with O(1) stack regardless of N.
type worklist struct {
	jobs []job
	head int
}

// push appends a continuation invocation to the queue.
func (wl *worklist) push(fn callback, arg any) {
	wl.jobs = append(wl.jobs, job{fn: fn, arg: arg})
}

// drain runs queued jobs until none remain, including jobs pushed by the
// jobs themselves. Slots are cleared as they are consumed so settled
// values do not outlive the drain.
func (wl *worklist) drain() {
	for wl.head < len(wl.jobs) {
		j := wl.jobs[wl.head]
		wl.jobs[wl.head] = job{}
		wl.head++
		j.fn(j.arg, wl)
	}
	wl.jobs = wl.jobs[:0]
	wl.head = 0
}
