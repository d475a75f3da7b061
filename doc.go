// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pulse provides push-based functional reactive programming
// primitives in Go.
//
// The package is built on three mutually recursive abstractions:
//
//   - [Future]: a handler-registration primitive. Running a future registers
//     a handler and returns a cancel capability; the handler may be invoked
//     immediately, later, or never.
//   - [Reactive]: a value that changes over time. It always holds a current
//     value and notifies subscribers synchronously on every update.
//   - [Event]: a discrete stream of occurrences. An event is, conceptually,
//     a future of the reactive value that its occurrences step through:
//     Event[A] ≅ Future[Reactive[A]]. Sampling the event once yields the
//     value cell whose changes are the occurrences themselves.
//
// # Sources and Promotion
//
// [New] creates a source event paired with its emit capability. The emit
// function is the only way to produce occurrences on a source; derived
// events (built by combinators) carry no emit authority.
//
// A freshly created source has no backing value cell yet — there is nothing
// to hold before the first occurrence exists. Subscribers registered before
// the first emission queue in arrival order. The first emission promotes the
// source: it constructs the concrete cell, delivers the value to the queued
// subscribers, and routes every later emission through the cell's privileged
// update path. Promotion happens at most once per source. Once promoted, a
// new subscriber is delivered the latest occurrence once at registration,
// then each subsequent occurrence.
//
// # Combinators
//
// Type-changing combinators are generic free functions, type-preserving
// operations are methods:
//
//   - [MapFuture], [BindFuture]: transform and sequence futures
//   - [MapEvent], [FilterEvent]: per-occurrence transformation and filtering
//   - [MergeEvents]: interleave two occurrence streams
//   - [ZipEvents]: pair the latest occurrence of each side
//   - [FoldEvent]: accumulate occurrences into a reactive value
//   - [BindEvent]: dynamic flat-map, switching to a new inner event per
//     occurrence
//   - [SwitchEvents]: a single continuous stream over a changing source
//   - [Event.Stepper]: convert an event into a reactive value
//   - [MapReactive], [ApReactive], [BindReactive]: lift functions over
//     reactive values
//   - [Reactive.Changes]: view a reactive value's updates as an event
//
// # Delivery Model
//
// Delivery is single-threaded, cooperative, and fully synchronous: emitting
// a value runs the entire transitive chain of registered handlers before the
// emitting call returns. Re-entrant emission is permitted and executes
// depth-first. Direct subscribers of one stream are notified in registration
// order; there is no cross-stream ordering guarantee. Notification iterates
// over a snapshot of the subscriber list, so a handler may cancel its own or
// another subscription mid-delivery.
//
// The core takes no locks. Adapters that deliver from their own goroutines
// ([Ticker], [FromHub]) must not be mixed with same-source emissions from
// other goroutines without external serialization.
//
// # Errors
//
// A panic in a user-supplied transform, predicate, fold step, or subscriber
// handler is recovered at the point of invocation, logged through the
// package logger ("pulse"), and the occurrence is dropped for that path
// only. The registration stays live and subsequent occurrences flow
// normally. Misuse — emitting on a cleaned-up source — panics immediately
// with a "pulse:"-prefixed message.
//
// # Resource Discipline
//
// Every registration returns a cancel capability, and every stream or value
// owns the registrations it created upstream. [Event.Cleanup] and
// [Reactive.Cleanup] release the whole derived subgraph transitively:
// active subscriptions, stepper cells, the backing source cell, and any
// release hooks installed via [Event.OnCleanup]. Cancel capabilities and
// Cleanup tolerate repeat calls.
//
// # Example
//
//	clicks, emit := pulse.New[int]()
//	doubled := pulse.MapEvent(clicks, func(x int) int { return x * 2 })
//	total := pulse.FoldEvent(doubled, 0, func(acc, x int) int { return acc + x })
//
//	emit(1)
//	emit(2)
//	emit(3)
//	// total.Get() == 12
//
//	clicks.Cleanup()
package pulse
