// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr_test

import (
	"testing"

	"code.hybscloud.com/futr"
	"code.hybscloud.com/kont"
)

func TestDriveExprSettledAwait(t *testing.T) {
	routine := futr.ExprAwaitBind(futr.Resolve(5), func(v any) kont.Expr[int] {
		return futr.ExprDone(v.(int) + 1)
	})
	if v := value(t, futr.DriveExpr(routine)); v != 6 {
		t.Fatalf("result got %v, want 6", v)
	}
}

func TestDriveExprPendingAwait(t *testing.T) {
	var resolve func(any)
	pending := futr.New(func(res, _ func(any)) { resolve = res })

	routine := futr.ExprAwaitThen(pending, futr.ExprDone("resumed"))
	result := futr.DriveExpr(routine)
	if result.State() != futr.Pending {
		t.Fatalf("result state got %v, want pending", result.State())
	}
	resolve(nil)
	if v := value(t, result); v != "resumed" {
		t.Fatalf("result got %v, want %q", v, "resumed")
	}
}

func TestDriveExprRejectionRejectsResult(t *testing.T) {
	routine := futr.ExprAwaitBind(futr.Reject("expr-broken"), func(v any) kont.Expr[any] {
		t.Fatal("continuation ran past a rejection")
		return futr.ExprDone[any](nil)
	})
	if r := reason(t, futr.DriveExpr(routine)); r != "expr-broken" {
		t.Fatalf("result reason got %v, want %q", r, "expr-broken")
	}
}

func TestDriveExprAwaitEither(t *testing.T) {
	routine := futr.ExprAwaitEither(futr.Reject("e"), func(e kont.Either[any, any]) kont.Expr[string] {
		if r, ok := e.GetLeft(); ok {
			return futr.ExprDone("left:" + r.(string))
		}
		return futr.ExprDone("right")
	})
	if v := value(t, futr.DriveExpr(routine)); v != "left:e" {
		t.Fatalf("result got %v, want %q", v, "left:e")
	}
}

func TestExprLoopDriven(t *testing.T) {
	// Sum 1..10 awaiting a settled future per iteration.
	type acc struct{ i, sum int }
	routine := futr.ExprLoop(acc{1, 0}, func(s acc) kont.Expr[kont.Either[acc, int]] {
		if s.i > 10 {
			return futr.ExprDone(kont.Right[acc, int](s.sum))
		}
		return futr.ExprAwaitBind(futr.Resolve(s.i), func(v any) kont.Expr[kont.Either[acc, int]] {
			return futr.ExprDone(kont.Left[acc, int](acc{s.i + 1, s.sum + v.(int)}))
		})
	})
	if v := value(t, futr.DriveExpr(routine)); v != 55 {
		t.Fatalf("loop result got %v, want 55", v)
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	// Reify then Reflect preserves the routine's semantics.
	routine := futr.AwaitBind(futr.Resolve(2), func(v any) kont.Eff[int] {
		return futr.Done(v.(int) * 3)
	})
	reflected := futr.Reflect(futr.Reify(routine))
	if v := value(t, futr.Drive(reflected)); v != 6 {
		t.Fatalf("round-trip result got %v, want 6", v)
	}
}
