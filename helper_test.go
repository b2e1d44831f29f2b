// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/futr"
)

// value blocks until f settles and fails the test unless f fulfilled.
func value(tb testing.TB, f *futr.Future) any {
	tb.Helper()
	v, err := f.Wait()
	if err != nil {
		tb.Fatalf("future rejected: %v", err)
	}
	return v
}

// reason blocks until f settles and returns the raw rejection reason,
// unwrapping the RejectionError adapter for non-error reasons.
func reason(tb testing.TB, f *futr.Future) any {
	tb.Helper()
	_, err := f.Wait()
	if err == nil {
		tb.Fatal("future fulfilled, want rejection")
	}
	var rej *futr.RejectionError
	if errors.As(err, &rej) {
		return rej.Reason
	}
	return err
}
