// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import "slices"

// Reactive is a value that changes over time. It always holds a current
// value, keeps its subscribers in registration order, and notifies them
// synchronously on every update.
//
// Mutation goes through the unexported update path only. The update
// capability belongs to whichever entity constructed the reactive — a
// source event's emit closure or an upstream combinator — never to
// arbitrary consumer code.
type Reactive[A any] struct {
	current   A
	observers []*observer[A]
	changes   *Event[A]
	releases  []func()
	dead      bool
}

// observer is one registration in a reactive's subscriber list. The gone
// flag tombstones a registration canceled mid-notification: update iterates
// a snapshot, so removal from the slice alone is not enough.
type observer[A any] struct {
	notify func(A)
	gone   bool
}

// NewReactive constructs a reactive holding initial. The current value is
// defined from construction onwards.
func NewReactive[A any](initial A) *Reactive[A] {
	return &Reactive[A]{current: initial}
}

// Get returns the current value. It is synchronous and never fails.
func (r *Reactive[A]) Get() A {
	return r.current
}

// Subscribe registers handler with immediate delivery of the current value,
// then delivery of every subsequent update. The returned cancel tolerates
// repeat calls.
func (r *Reactive[A]) Subscribe(handler func(A)) (cancel func()) {
	return r.observe(handler, true)
}

// observe is the privileged registration path. notifyNow false skips the
// immediate delivery of current; combinators that already seeded their
// result from the current value use it to avoid double-counting.
func (r *Reactive[A]) observe(handler func(A), notifyNow bool) func() {
	if r.dead {
		return func() {}
	}
	ob := &observer[A]{notify: handler}
	r.observers = append(r.observers, ob)
	if notifyNow {
		deliver(handler, r.current)
	}
	return func() {
		if ob.gone {
			return
		}
		ob.gone = true
		r.drop(ob)
	}
}

func (r *Reactive[A]) drop(ob *observer[A]) {
	for i, o := range r.observers {
		if o == ob {
			r.observers = slices.Delete(r.observers, i, i+1)
			return
		}
	}
}

// update is the privileged mutation path: it sets the current value and
// notifies subscribers in registration order. Notification iterates a
// snapshot so a handler may cancel registrations re-entrantly. A panicking
// handler is logged and skipped; the remaining handlers still run.
func (r *Reactive[A]) update(v A) {
	if r.dead {
		return
	}
	r.current = v
	obs := slices.Clone(r.observers)
	for _, ob := range obs {
		if ob.gone {
			continue
		}
		deliver(ob.notify, v)
	}
}

// Changes returns the event of this reactive's updates, built lazily over
// [FromReactive] and cached: every call returns the same event instance.
// A subscriber to the change event is delivered the current value once at
// registration, then each update.
func (r *Reactive[A]) Changes() *Event[A] {
	if r.changes == nil {
		r.changes = derive(FromReactive(r))
	}
	return r.changes
}

// Cleanup clears the subscriber list, releases the upstream registrations
// that drive this reactive, and cleans the cached change event if one was
// created. Idempotent.
func (r *Reactive[A]) Cleanup() {
	if r.dead {
		return
	}
	r.dead = true
	for _, ob := range r.observers {
		ob.gone = true
	}
	r.observers = nil
	releases := r.releases
	r.releases = nil
	for _, release := range releases {
		release()
	}
	if r.changes != nil {
		r.changes.Cleanup()
	}
}

// MapReactive lifts f over a reactive value: the result is seeded with
// f(current) and re-derived through the privileged path on every parent
// update. A panic in f during an update is logged and that update is
// skipped; a panic while computing the seed propagates to the caller.
func MapReactive[A, B any](r *Reactive[A], f func(A) B) *Reactive[B] {
	out := NewReactive(f(r.current))
	cancel := r.observe(func(a A) {
		b, ok := apply(f, a)
		if !ok {
			return
		}
		out.update(b)
	}, false)
	out.releases = append(out.releases, cancel)
	return out
}

// ApReactive combines a reactive function with a reactive argument: the
// result holds rf.current(ra.current) and is re-derived whenever either
// side updates. Both upstream registrations are released by the result's
// Cleanup.
func ApReactive[A, B any](rf *Reactive[func(A) B], ra *Reactive[A]) *Reactive[B] {
	out := NewReactive(rf.current(ra.current))
	recompute := func() {
		b, ok := apply(rf.current, ra.current)
		if !ok {
			return
		}
		out.update(b)
	}
	cancelF := rf.observe(func(func(A) B) { recompute() }, false)
	cancelA := ra.observe(func(A) { recompute() }, false)
	out.releases = append(out.releases, cancelF, cancelA)
	return out
}

// BindReactive sequences reactive values: the result is seeded from
// f(current) and, on each parent update, swaps its registration to the new
// inner reactive. The previous inner registration is released before the
// new one is installed, and whichever inner registration is live at cleanup
// time is released then.
func BindReactive[A, B any](r *Reactive[A], f func(A) *Reactive[B]) *Reactive[B] {
	inner := f(r.current)
	out := NewReactive(inner.current)
	cancelInner := inner.observe(func(b B) { out.update(b) }, false)
	cancelOuter := r.observe(func(a A) {
		cancelInner()
		next, ok := apply(f, a)
		if !ok || next == nil {
			cancelInner = func() {}
			return
		}
		out.update(next.current)
		cancelInner = next.observe(func(b B) { out.update(b) }, false)
	}, false)
	out.releases = append(out.releases,
		cancelOuter,
		func() { cancelInner() },
	)
	return out
}
