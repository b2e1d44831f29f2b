// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/kont"
)

// Await is the effect operation suspending a routine until a future
// settles. Perform(Await{Future: f}) resumes with kont.Either[any, any]:
// Right carries the fulfillment value, Left carries the rejection reason.
//
// The fused constructors (AwaitBind and friends) unwrap the Either so that
// routine code sees fulfillment values directly and rejections re-raise
// through the error effect; AwaitEither exposes the Either for local
// catching. Performing Await outside a driver (Drive, Exec) is a contract
// violation and panics as an unhandled effect.
type Await struct {
	kont.Phantom[kont.Either[any, any]]
	Future *Future
}

// errorDispatcher is the structural interface for kont error-effect
// operations (Throw, Catch). The drivers dispatch these eagerly: a raised
// reason short-circuits the routine and rejects or Lefts its result.
type errorDispatcher interface {
	DispatchError(ctx *kont.ErrorContext[any]) (kont.Resumed, bool)
}
