// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"errors"
	"fmt"
)

// ErrTimeout is the rejection reason produced by Timeout when the deadline
// future wins the race.
var ErrTimeout = errors.New("futr: timeout")

// ErrNonAwaitable rejects a driven routine's result future when the routine
// suspends on an operation that does not carry the future capability, and
// rejects a Retry future whose producer is neither an Awaitable nor a
// factory function.
var ErrNonAwaitable = errors.New("futr: suspended on a non-awaitable value")

// RejectionError adapts an opaque rejection reason to the error interface
// for the Poll/Wait boundary. Reasons that already are errors are returned
// as-is and never wrapped.
type RejectionError struct {
	Reason any
}

// Error implements the error interface.
func (e *RejectionError) Error() string {
	return fmt.Sprintf("futr: rejected: %v", e.Reason)
}

// reasonError converts a rejection reason into an error, preserving reasons
// that already implement error for errors.Is/As matching.
func reasonError(reason any) error {
	if err, ok := reason.(error); ok {
		return err
	}
	return &RejectionError{Reason: reason}
}
