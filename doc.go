// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package futr provides one-shot futures with chainable continuations,
// combinators over collections of futures, and awaitable routines via
// algebraic effects on [code.hybscloud.com/kont].
//
// A [Future] settles exactly once, to a fulfillment value or a rejection
// reason, both opaque. Settlement dispatch is synchronous and iterative:
// callbacks run inline within the settling call, in registration order,
// through a work-list trampoline that keeps long Then/Catch chains at
// constant stack depth.
//
// # Architecture
//
//   - Core: [New] wires an executor to the two settlement capabilities.
//     [Future.Then] and [Future.Catch] derive futures with failure-guarded
//     handlers and one-level flattening of returned [Awaitable] values.
//     Transitions are CAS-guarded via [code.hybscloud.com/atomix] because
//     timer callbacks settle futures from timer goroutines.
//   - Combinators: [Resolve], [Reject], [All], [Race], [Delay], [Timeout],
//     [Retry] — built on the core's public contract. Nothing cancels:
//     losers of [Race] and [Timeout] run to completion and their outcomes
//     are discarded by the one-shot transition.
//   - Routines: linear code over futures, written as [code.hybscloud.com/kont]
//     computations that suspend on the [Await] effect. [Drive] executes a
//     routine asynchronously, returning its result future; [Exec] executes
//     one synchronously, blocking at each await with adaptive backoff
//     ([code.hybscloud.com/iox]).
//
// # API Topologies
//
//   - Observation: [Future.State], [Future.Poll] (non-blocking, returns
//     [code.hybscloud.com/iox.ErrWouldBlock] while pending), [Future.Wait]
//     (blocking).
//   - Cont-world routines: [AwaitBind], [AwaitThen], [AwaitEither],
//     [AwaitFunc], [Fail], [Done].
//   - Expr-world routines: [ExprAwaitBind], [ExprAwaitThen],
//     [ExprAwaitEither], [ExprDone]. Bridge via [Reify] and [Reflect].
//   - Recursive: [Loop] and [ExprLoop] for trampoline-based iterative
//     routines.
//   - Drivers: [Drive]/[DriveExpr] (asynchronous, result future),
//     [Wrap]/[Wrap2] (routine factory → future-returning function),
//     [Exec]/[ExecExpr] (blocking, [code.hybscloud.com/kont.Either] result).
//
// # Error Handling
//
//   - A panic in a Then/Catch handler rejects the derived future with the
//     panic value; it never unwinds into the settling call.
//   - A rejection skips fulfillment handlers and carries its reason along
//     derived futures until a Catch consumes it. A rejection nobody
//     observes is inert.
//   - Inside routines, an awaited rejection re-raises through the kont
//     error effect at the resume point; [AwaitEither] catches it locally,
//     otherwise it rejects the routine's result future.
//
// # Example
//
//	routine := futr.AwaitBind(futr.Resolve(5), func(v any) kont.Eff[int] {
//		return futr.Done(v.(int) + 1)
//	})
//	result := futr.Drive(routine)
//	v, _ := result.Poll() // 6: both futures settle synchronously
package futr
