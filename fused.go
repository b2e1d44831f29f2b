// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/kont"
)

// AwaitBind suspends on f and passes its fulfillment value to k.
// Fuses Perform(Await{Future: f}) + Bind + rejection re-raise: if f
// rejects, the reason is raised through the error effect at this point in
// the routine, skipping k, and rejects the result future unless an
// enclosing AwaitEither catches it first.
func AwaitBind[B any](f *Future, k func(any) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await{Future: f}), func(e kont.Either[any, any]) kont.Eff[B] {
		if reason, ok := e.GetLeft(); ok {
			return kont.ThrowError[any, B](reason)
		}
		v, _ := e.GetRight()
		return k(v)
	})
}

// AwaitThen suspends on f, discards its fulfillment value, and continues
// with next. Rejection re-raises as in AwaitBind.
func AwaitThen[B any](f *Future, next kont.Eff[B]) kont.Eff[B] {
	return AwaitBind(f, func(any) kont.Eff[B] {
		return next
	})
}

// AwaitEither suspends on f and passes its raw settlement to k: Right for
// fulfillment, Left for rejection. The routine-local rejection catch —
// nothing is re-raised.
func AwaitEither[B any](f *Future, k func(kont.Either[any, any]) kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Perform(Await{Future: f}), k)
}

// AwaitFunc runs the zero-argument producer fn inside a fresh future via
// New and suspends on it: the future fulfills with fn's return value, or
// rejects with its panic value. k receives the fulfillment value;
// rejection re-raises as in AwaitBind.
func AwaitFunc[B any](fn func() any, k func(any) kont.Eff[B]) kont.Eff[B] {
	f := New(func(resolve, reject func(any)) {
		out, panicked, recovered := protect(func(any) any { return fn() }, nil)
		if panicked {
			reject(recovered)
			return
		}
		resolve(out)
	})
	return AwaitBind(f, k)
}

// Fail raises reason, rejecting the routine's result future unless an
// enclosing AwaitEither already consumed the settlement.
// Fuses the error effect's Throw.
func Fail[A any](reason any) kont.Eff[A] {
	return kont.ThrowError[any, A](reason)
}

// Done lifts a final value into a routine.
func Done[A any](a A) kont.Eff[A] {
	return kont.Pure(a)
}
