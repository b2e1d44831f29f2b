// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/kont"
)

// execHandler handles Await and error effects for the blocking drivers.
// Await waits for settlement via adaptive backoff; error ops short-circuit
// on Throw. Settlement progress during the wait must come from another
// goroutine, typically a timer callback.
type execHandler[R any] struct {
	errCtx *kont.ErrorContext[any]
}

// Dispatch implements kont.Handler for the blocking Await+Error handler.
// Dispatch order: Await → Error.
func (h execHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	if aw, ok := op.(Await); ok {
		if aw.Future == nil {
			return kont.Left[any, R](ErrNonAwaitable), false
		}
		st, val := aw.Future.wait()
		if st == Rejected {
			return kont.Left[any, any](val), true
		}
		return kont.Right[any, any](val), true
	}
	if eop, ok := op.(errorDispatcher); ok {
		v, _ := eop.DispatchError(h.errCtx)
		if h.errCtx.HasErr {
			return kont.Left[any, R](h.errCtx.Err), false
		}
		return v, true
	}
	panic("futr: unhandled effect in execHandler")
}

// Exec runs a Cont-world routine to completion on the calling goroutine,
// blocking at each Await until the future settles. Returns Either:
// Right on completion, Left on a raised reason (Fail, or an awaited
// rejection that no AwaitEither caught).
func Exec[R any](routine kont.Eff[R]) kont.Either[any, R] {
	wrapped := kont.Map[kont.Resumed, R, kont.Either[any, R]](routine, func(r R) kont.Either[any, R] {
		return kont.Right[any, R](r)
	})
	var errCtx kont.ErrorContext[any]
	h := execHandler[R]{errCtx: &errCtx}
	return kont.Handle(wrapped, h)
}

// ExecExpr runs an Expr-world routine to completion on the calling
// goroutine, blocking at each Await until the future settles. Returns
// Either: Right on completion, Left on a raised reason.
func ExecExpr[R any](routine kont.Expr[R]) kont.Either[any, R] {
	wrapped := kont.ExprMap(routine, func(r R) kont.Either[any, R] {
		return kont.Right[any, R](r)
	})
	var errCtx kont.ErrorContext[any]
	h := execHandler[R]{errCtx: &errCtx}
	return kont.HandleExpr(wrapped, h)
}
