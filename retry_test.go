// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"code.hybscloud.com/futr"
)

func TestRetrySucceedsOnThirdAttempt(t *testing.T) {
	var calls atomic.Int32
	factory := func() *futr.Future {
		if calls.Add(1) < 3 {
			return futr.Reject("not yet")
		}
		return futr.Resolve("third time")
	}
	f := futr.Retry(factory, 3, 0)
	if v := value(t, f); v != "third time" {
		t.Fatalf("Retry value got %v, want %q", v, "third time")
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("factory invoked %d times, want 3", n)
	}
}

func TestRetryExhaustionCarriesLastReason(t *testing.T) {
	var calls atomic.Int32
	factory := func() *futr.Future {
		n := calls.Add(1)
		return futr.Reject(int(n))
	}
	f := futr.Retry(factory, 3, 0)
	if r := reason(t, f); r != 3 {
		t.Fatalf("Retry reason got %v, want last attempt's 3", r)
	}
	if n := calls.Load(); n != 3 {
		t.Fatalf("factory invoked %d times, want 3", n)
	}
}

func TestRetryFirstAttemptUndelayed(t *testing.T) {
	// A fulfilling producer settles synchronously: no initial delay.
	f := futr.Retry(func() *futr.Future {
		return futr.Resolve("now")
	}, futr.DefaultMaxAttempts, futr.DefaultRetryDelay)
	if f.State() != futr.Fulfilled {
		t.Fatalf("state got %v, want fulfilled without waiting", f.State())
	}
	if v := value(t, f); v != "now" {
		t.Fatalf("Retry value got %v, want %q", v, "now")
	}
}

func TestRetryPreBuiltFutureFootgun(t *testing.T) {
	// A pre-built rejected future is reused by every attempt: each retry
	// observes the same settled rejection until maxAttempts.
	f := futr.Retry(futr.Reject("stuck"), 3, 0)
	if r := reason(t, f); r != "stuck" {
		t.Fatalf("Retry reason got %v, want %q", r, "stuck")
	}
}

func TestRetryPreBuiltFulfilledFuture(t *testing.T) {
	f := futr.Retry(futr.Resolve(9), 3, 0)
	if v := value(t, f); v != 9 {
		t.Fatalf("Retry value got %v, want 9", v)
	}
}

func TestRetryFactoryPanicRejectsAttempt(t *testing.T) {
	f := futr.Retry(func() *futr.Future {
		panic("factory broke")
	}, 2, 0)
	if r := reason(t, f); r != "factory broke" {
		t.Fatalf("Retry reason got %v, want panic value", r)
	}
}

func TestRetryInvalidProducer(t *testing.T) {
	_, err := futr.Retry(42, 3, 0).Wait()
	if !errors.Is(err, futr.ErrNonAwaitable) {
		t.Fatalf("Retry error got %v, want ErrNonAwaitable", err)
	}
}
