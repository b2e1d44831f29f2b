// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/kont"
)

// identityResume is the identity resume function for EffectFrame
// construction. Named function produces a static function value,
// consistent with kont convention.
func identityResume(v kont.Erased) kont.Erased { return v }

func awaitBindUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	k := data.(func(any) kont.Expr[B])
	e := current.(kont.Either[any, any])
	if reason, ok := e.GetLeft(); ok {
		raised := kont.ExprThrowError[any, B](reason)
		return kont.Erased(raised.Value), raised.Frame
	}
	v, _ := e.GetRight()
	result := k(v)
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitBind suspends on f and passes its fulfillment value to k.
// Fuses ExprPerform(Await{Future: f}) + ExprBind + rejection re-raise.
func ExprAwaitBind[B any](f *Future, k func(any) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = k
	bf.Unwind = awaitBindUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await{Future: f}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprAwaitThen suspends on f, discards its fulfillment value, and
// continues with next. Rejection re-raises as in ExprAwaitBind.
func ExprAwaitThen[B any](f *Future, next kont.Expr[B]) kont.Expr[B] {
	return ExprAwaitBind(f, func(any) kont.Expr[B] {
		return next
	})
}

func awaitEitherUnwind[B any](data, _, _ kont.Erased, current kont.Erased) (kont.Erased, kont.Frame) {
	k := data.(func(kont.Either[any, any]) kont.Expr[B])
	result := k(current.(kont.Either[any, any]))
	return kont.Erased(result.Value), result.Frame
}

// ExprAwaitEither suspends on f and passes its raw settlement to k:
// Right for fulfillment, Left for rejection. Nothing is re-raised.
func ExprAwaitEither[B any](f *Future, k func(kont.Either[any, any]) kont.Expr[B]) kont.Expr[B] {
	bf := kont.AcquireUnwindFrame()
	bf.Data1 = k
	bf.Unwind = awaitEitherUnwind[B]
	ef := kont.AcquireEffectFrame()
	ef.Operation = Await{Future: f}
	ef.Resume = identityResume
	ef.Next = bf
	return kont.ExprSuspend[B](ef)
}

// ExprDone lifts a final value into an Expr-world routine.
func ExprDone[A any](a A) kont.Expr[A] {
	return kont.ExprReturn(a)
}
