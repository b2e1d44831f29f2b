// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"code.hybscloud.com/futr"
)

func TestScheduleFiresOnceAfterDuration(t *testing.T) {
	var fired atomic.Int32
	start := time.Now()
	done := make(chan struct{})
	futr.Schedule(15*time.Millisecond, func() {
		fired.Add(1)
		close(done)
	})
	<-done
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("fired after %v, want >= 15ms", elapsed)
	}
	time.Sleep(30 * time.Millisecond)
	if n := fired.Load(); n != 1 {
		t.Fatalf("fired %d times, want exactly once", n)
	}
}

func TestDelayFulfillsAfterDuration(t *testing.T) {
	start := time.Now()
	v, err := futr.Delay(20 * time.Millisecond).Wait()
	if err != nil {
		t.Fatalf("Delay rejected: %v", err)
	}
	if v != nil {
		t.Fatalf("Delay value got %v, want nil", v)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Delay fulfilled after %v, want >= 20ms", elapsed)
	}
}

func TestDelayIsNonBlocking(t *testing.T) {
	// An outstanding delay must not stop other futures from settling.
	long := futr.Delay(time.Second)
	quick := futr.Delay(5 * time.Millisecond).Then(func(any) any { return "quick" })
	if v := value(t, quick); v != "quick" {
		t.Fatalf("quick future got %v while delay outstanding", v)
	}
	if long.State() != futr.Pending {
		t.Fatalf("long delay state got %v, want pending", long.State())
	}
}

func TestTimeoutRejectsBeforeSlowFuture(t *testing.T) {
	start := time.Now()
	_, err := futr.Timeout(futr.Delay(time.Second), 10*time.Millisecond).Wait()
	if !errors.Is(err, futr.ErrTimeout) {
		t.Fatalf("Timeout error got %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed >= time.Second {
		t.Fatalf("Timeout rejected after %v, want well before 1s", elapsed)
	}
}

func TestTimeoutAdoptsFastFuture(t *testing.T) {
	fast := futr.Delay(5 * time.Millisecond).Then(func(any) any { return "beat it" })
	v, err := futr.Timeout(fast, 500*time.Millisecond).Wait()
	if err != nil {
		t.Fatalf("Timeout rejected: %v", err)
	}
	if v != "beat it" {
		t.Fatalf("Timeout value got %v, want %q", v, "beat it")
	}
}

func TestTimeoutDoesNotCancelOriginal(t *testing.T) {
	original := futr.Delay(30 * time.Millisecond).Then(func(any) any { return "done anyway" })
	_, err := futr.Timeout(original, 5*time.Millisecond).Wait()
	if !errors.Is(err, futr.ErrTimeout) {
		t.Fatalf("Timeout error got %v, want ErrTimeout", err)
	}
	// The losing future still runs to completion.
	if v := value(t, original); v != "done anyway" {
		t.Fatalf("original got %v after losing the race", v)
	}
}
