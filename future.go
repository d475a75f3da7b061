// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

// Future is the eventual-value primitive underlying [Event] and
// [Reactive.Changes]. A Future[A] is a wrapped registration function:
// running it with a handler creates an independent registration and returns
// the capability to cancel it. A handler may be invoked synchronously during
// Run, any number of times afterwards, or never.
type Future[A any] struct {
	run func(handler func(A)) func()
}

// NewFuture wraps a raw registration function as a Future. The registration
// function must return a cancel capability for the registration it created;
// each call must produce an independent registration.
func NewFuture[A any](run func(handler func(A)) (cancel func())) Future[A] {
	return Future[A]{run: run}
}

// Run registers handler and returns the cancel capability for this
// registration. Run may be called any number of times; registrations are
// independent and independently cancelable.
func (m Future[A]) Run(handler func(A)) (cancel func()) {
	return m.run(handler)
}

// Never returns the future that delivers nothing. Its registrations are
// no-ops with no-op cancels.
func Never[A any]() Future[A] {
	return Future[A]{run: func(func(A)) func() {
		return func() {}
	}}
}

// MapFuture applies f to each delivered value. A panic in f is recovered
// and logged; that delivery is dropped and the registration stays live.
func MapFuture[A, B any](m Future[A], f func(A) B) Future[B] {
	return Future[B]{run: func(handler func(B)) func() {
		return m.run(func(a A) {
			b, ok := apply(f, a)
			if !ok {
				return
			}
			handler(b)
		})
	}}
}

// BindFuture sequences futures: each delivery from m cancels the previous
// inner registration (if any) and registers handler on f(value). The
// returned cancel releases both the outer registration and whichever inner
// registration is live at that point.
func BindFuture[A, B any](m Future[A], f func(A) Future[B]) Future[B] {
	return Future[B]{run: func(handler func(B)) func() {
		var inner func()
		outer := m.run(func(a A) {
			if inner != nil {
				inner()
				inner = nil
			}
			next, ok := apply(f, a)
			if !ok {
				return
			}
			inner = next.run(handler)
		})
		return func() {
			outer()
			if inner != nil {
				inner()
				inner = nil
			}
		}
	}}
}

// FromReactive exposes a reactive value as a future: each registration is
// delivered the current value exactly once, immediately, and then every
// subsequent update.
func FromReactive[A any](r *Reactive[A]) Future[A] {
	return Future[A]{run: func(handler func(A)) func() {
		return r.observe(handler, true)
	}}
}
