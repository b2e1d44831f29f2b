// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/kont"
)

// Drive starts one execution of routine and returns its result future.
// The routine runs synchronously on the calling goroutine until its first
// Await on a pending future; the driver then parks it on that future's
// callback queues and returns. Each settlement resumes the routine inside
// the settler's dispatch drain until the next suspension, so a routine
// awaiting a chain of already-settled futures advances iteratively, not
// recursively.
//
// The result future fulfills with the routine's final value, and rejects
// with a raised reason (Fail, or an awaited rejection that no AwaitEither
// caught). Driving is reentrant: every call evaluates the routine
// independently with an independent result future.
func Drive[R any](routine kont.Eff[R]) *Future {
	return DriveExpr(kont.Reify(routine))
}

// DriveExpr starts one execution of an Expr-world routine and returns its
// result future. Suspensions are affine, so an Expr value may be driven at
// most once; construct a fresh Expr per execution (or use Drive, which
// reifies per call).
func DriveExpr[R any](routine kont.Expr[R]) *Future {
	result := newPending()
	var wl worklist
	v, susp := kont.StepExpr(routine)
	drive(v, susp, result, &wl)
	wl.drain()
	return result
}

// Wrap converts a routine factory into a future-returning function: each
// invocation builds a fresh routine from its argument and drives it,
// giving one independent execution and result future per call.
func Wrap[A, R any](routine func(A) kont.Eff[R]) func(A) *Future {
	return func(a A) *Future {
		return Drive(routine(a))
	}
}

// Wrap2 is Wrap for two-argument routine factories.
func Wrap2[A, B, R any](routine func(A, B) kont.Eff[R]) func(A, B) *Future {
	return func(a A, b B) *Future {
		return Drive(routine(a, b))
	}
}

// drive advances one routine execution until it completes, raises, or
// parks on a pending future.
//
//   - completion settles result as Fulfilled with the final value.
//   - an error-effect operation (Throw) discards the suspension and
//     settles result as Rejected with the raised reason.
//   - an Await on a live future subscribes a resumption pair: fulfillment
//     re-enters drive with Right(value), rejection with Left(reason). The
//     continuations thread the active worklist, so resumptions triggered
//     during a dispatch drain extend that drain.
//   - any other suspension is a contract violation: the routine yielded a
//     value without the future capability. The suspension is discarded and
//     result rejects with ErrNonAwaitable.
func drive[R any](v R, susp *kont.Suspension[R], result *Future, wl *worklist) {
	for {
		if susp == nil {
			result.settle(Fulfilled, v, wl)
			return
		}
		switch op := susp.Op().(type) {
		case Await:
			if op.Future == nil {
				susp.Discard()
				result.settle(Rejected, ErrNonAwaitable, wl)
				return
			}
			s := susp
			op.Future.subscribe(
				func(val any, wl *worklist) {
					v2, s2 := s.Resume(kont.Right[any, any](val))
					drive(v2, s2, result, wl)
				},
				func(reason any, wl *worklist) {
					v2, s2 := s.Resume(kont.Left[any, any](reason))
					drive(v2, s2, result, wl)
				},
				wl,
			)
			return
		case errorDispatcher:
			var errCtx kont.ErrorContext[any]
			rv, _ := op.DispatchError(&errCtx)
			if errCtx.HasErr {
				susp.Discard()
				result.settle(Rejected, errCtx.Err, wl)
				return
			}
			v, susp = susp.Resume(rv)
		default:
			susp.Discard()
			result.settle(Rejected, ErrNonAwaitable, wl)
			return
		}
	}
}
