// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"time"
)

// Schedule is the timer collaborator: it fires fn exactly once, with no
// arguments, no earlier than d after the call. There is no cancellation.
// fn runs on a timer goroutine, so everything it settles goes through the
// CAS-guarded transition like any concurrent settler.
func Schedule(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}

// Delay returns a future that fulfills with nil after at least d has
// elapsed. The wait is non-blocking: other futures make progress while the
// timer is outstanding.
func Delay(d time.Duration) *Future {
	return New(func(resolve, _ func(any)) {
		Schedule(d, func() {
			resolve(nil)
		})
	})
}

// Timeout races f against a deadline of d. The result adopts f's outcome
// if f settles first and rejects with ErrTimeout otherwise. f itself is
// never cancelled; if it settles after losing, that settlement is
// discarded by the race's one-shot transition.
func Timeout(f *Future, d time.Duration) *Future {
	deadline := Delay(d).Then(func(any) any {
		return Reject(ErrTimeout)
	})
	return Race(f, deadline)
}
