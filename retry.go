// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"time"
)

// Default Retry parameters, standing in for the conventional
// Retry(producer) call shape.
const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = time.Second
)

// Retry drives producer until it fulfills or maxAttempts attempts have
// rejected. producer is either a factory func() *Future, invoked once per
// attempt, or an Awaitable used directly. The attempt counter starts at
// zero and increments before each attempt; the first attempt runs without
// any initial delay, and each subsequent attempt waits retryDelay via
// Delay first. On fulfillment the result fulfills with that value; once
// attempts reach maxAttempts the result rejects with the last reason.
//
// Passing a pre-built future instead of a factory makes every attempt
// after the first observe the same already-rejected future, so the retries
// reject immediately (spaced only by retryDelay) until maxAttempts is
// reached. This is the combinator's documented contract, not a defect to
// compensate for: callers who want a fresh computation per attempt must
// pass a factory.
//
// A factory that panics rejects the current attempt with the panic value.
// A producer of any other type rejects immediately with ErrNonAwaitable.
func Retry(producer any, maxAttempts int, retryDelay time.Duration) *Future {
	return New(func(resolve, reject func(any)) {
		var attempt func(n int)
		attempt = func(n int) {
			f := produce(producer)
			f.Then(func(v any) any {
				resolve(v)
				return nil
			})
			f.Catch(func(reason any) any {
				if n >= maxAttempts {
					reject(reason)
					return nil
				}
				Delay(retryDelay).Then(func(any) any {
					attempt(n + 1)
					return nil
				})
				return nil
			})
		}
		attempt(1)
	})
}

// produce obtains the attempt future from producer, guarding factory
// panics into rejections.
func produce(producer any) (f *Future) {
	switch p := producer.(type) {
	case Awaitable:
		return p.future()
	case func() *Future:
		defer func() {
			if r := recover(); r != nil {
				f = Reject(r)
			}
		}()
		f = p()
		if f == nil {
			f = Reject(ErrNonAwaitable)
		}
		return f
	default:
		return Reject(ErrNonAwaitable)
	}
}
