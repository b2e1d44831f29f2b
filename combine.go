// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package futr

import (
	"code.hybscloud.com/atomix"
)

// Resolve returns a future already fulfilled with v.
func Resolve(v any) *Future {
	return New(func(resolve, _ func(any)) {
		resolve(v)
	})
}

// Reject returns a future already rejected with reason.
func Reject(reason any) *Future {
	return New(func(_, reject func(any)) {
		reject(reason)
	})
}

// All returns a future that fulfills with the index-aligned []any of every
// input's value once all inputs fulfill, or rejects with the reason of the
// first input to reject. Fail-fast is observation-only: losing inputs keep
// running and their eventual settlements are discarded by the one-shot
// transition. An empty input fulfills immediately with an empty slice.
func All(fs ...*Future) *Future {
	return New(func(resolve, reject func(any)) {
		results := make([]any, len(fs))
		if len(fs) == 0 {
			resolve(results)
			return
		}
		// done counts fulfilled inputs; the final Add is the only
		// reader of the fully written results slice.
		var done atomix.Uint32
		n := uint32(len(fs))
		for i, f := range fs {
			f.Then(func(v any) any {
				results[i] = v
				if done.Add(1) == n {
					resolve(results)
				}
				return nil
			})
			f.Catch(func(reason any) any {
				reject(reason)
				return nil
			})
		}
	})
}

// Race returns a future that settles with the outcome of whichever input
// settles first, fulfillment or rejection alike. Losing inputs keep
// running; their outcomes are discarded by the one-shot transition.
//
// Racing zero futures yields a future that never settles. That edge is
// deliberate: there is no first settlement to adopt, and callers must not
// race an empty set expecting deterministic behavior.
func Race(fs ...*Future) *Future {
	return New(func(resolve, reject func(any)) {
		for _, f := range fs {
			f.Then(func(v any) any {
				resolve(v)
				return nil
			})
			f.Catch(func(reason any) any {
				reject(reason)
				return nil
			})
		}
	})
}
