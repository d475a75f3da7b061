// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import (
	"github.com/juju/collections/deque"
)

// Event is a discrete stream of occurrences. A source event (created by
// [New]) owns the cell its occurrences drive and is the only kind of event
// with emit authority; derived events are built by combinators and can only
// be fed by upstream propagation.
//
// An event tracks every registration created through Subscribe, any stepper
// cells it produced, and the release hooks installed via OnCleanup, so that
// Cleanup is a single transitive release of the whole subgraph.
type Event[A any] struct {
	future   Future[A]
	source   *source[A]
	active   map[int]func()
	nextID   int
	steppers []stepperEntry[A]
	hooks    []func()
	dead     bool
}

// source is the tagged state behind a source event.
//
// Unbound: cell is nil and registrations queue in pending, in arrival
// order. Bound: cell is the concrete reactive driven by emissions, and
// pending is retired. The transition — promotion — happens on the first
// emission, at most once.
type source[A any] struct {
	pending *deque.Deque
	cell    *Reactive[A]
}

// pendingReg is a registration queued on an unbound source. live is filled
// at promotion with the cancel of the cell registration it turned into.
type pendingReg[A any] struct {
	handler   func(A)
	cancelled bool
	live      func()
}

// New creates a source event paired with its emit capability. The emit
// function is the sole authority to produce occurrences on the source; it
// panics if called after Cleanup.
func New[A any]() (*Event[A], func(A)) {
	src := &source[A]{pending: deque.New()}
	e := &Event[A]{source: src, active: make(map[int]func())}
	e.future = NewFuture(src.attach)
	return e, e.emit
}

// derive wraps a future as a combinator-built event with no emit authority.
func derive[A any](f Future[A]) *Event[A] {
	return &Event[A]{future: f, active: make(map[int]func())}
}

// attach is the source's registration function. On an unbound source the
// handler queues; on a bound source it registers on the cell with immediate
// delivery of the latest occurrence.
func (s *source[A]) attach(handler func(A)) func() {
	if s.cell != nil {
		return s.cell.observe(handler, true)
	}
	if s.pending == nil {
		// Cleaned up before the first emission.
		return func() {}
	}
	reg := &pendingReg[A]{handler: handler}
	s.pending.PushBack(reg)
	return func() {
		reg.cancelled = true
		if reg.live != nil {
			reg.live()
			reg.live = nil
		}
	}
}

// promote binds the source to a concrete cell holding the first occurrence
// and converts the queued registrations, in arrival order, into cell
// registrations. Conversion delivers the first occurrence to each queued
// handler; handlers that re-enter (emit, subscribe, cancel) observe the
// bound state.
func (s *source[A]) promote(v A) {
	s.cell = NewReactive(v)
	for {
		item, ok := s.pending.PopFront()
		if !ok {
			break
		}
		reg := item.(*pendingReg[A])
		if reg.cancelled {
			continue
		}
		reg.live = s.cell.observe(reg.handler, true)
	}
}

// emit produces one occurrence. The first emission promotes the source;
// all later emissions go through the cell's privileged update path.
func (e *Event[A]) emit(v A) {
	if e.dead {
		panic("pulse: emit on cleaned up event")
	}
	if e.source.cell == nil {
		e.source.promote(v)
		return
	}
	e.source.cell.update(v)
}

// Subscribe registers handler for this event's occurrences by running the
// backing future. The returned cancel releases the registration and removes
// it from the event's active set; it tolerates repeat calls.
func (e *Event[A]) Subscribe(handler func(A)) (cancel func()) {
	if e.dead {
		return func() {}
	}
	release := e.future.Run(handler)
	id := e.nextID
	e.nextID++
	e.active[id] = release
	done := false
	return func() {
		if done {
			return
		}
		done = true
		delete(e.active, id)
		release()
	}
}

// OnCleanup installs a release hook run during Cleanup. Adapters use it to
// detach platform resources (timers, hub subscriptions) together with the
// event's own subgraph. Installing a hook on an already cleaned-up event
// runs it immediately.
func (e *Event[A]) OnCleanup(release func()) {
	if e.dead {
		runHook(release)
		return
	}
	e.hooks = append(e.hooks, release)
}

// Cleanup releases the event's whole subgraph. The release hooks run
// first, in installation order, before any other state changes: hooks are
// how adapters quiesce their emitting goroutines ([Ticker], [FromHub]),
// so once they return no emit can be in flight against the teardown that
// follows. Then every active registration, every stepper cell, and the
// backing source cell and its pending queue are released. Idempotent.
func (e *Event[A]) Cleanup() {
	if e.dead {
		return
	}
	hooks := e.hooks
	e.hooks = nil
	for _, hook := range hooks {
		runHook(hook)
	}
	if e.dead {
		// A hook re-entered Cleanup.
		return
	}
	e.dead = true
	active := e.active
	e.active = nil
	for _, release := range active {
		release()
	}
	steppers := e.steppers
	e.steppers = nil
	for _, st := range steppers {
		st.cell.Cleanup()
	}
	if e.source != nil {
		if e.source.cell != nil {
			e.source.cell.Cleanup()
		}
		e.source.pending = nil
	}
}
