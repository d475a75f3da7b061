// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

// BindEvent is dynamic flat-map over events: each outer occurrence replaces
// the active inner event. The previous inner event is fully released —
// registration canceled, then Cleanup — before f produces the next one.
// Canceling the result releases the outer registration plus whichever inner
// event is active at that point. A panic in f is logged and that outer
// occurrence produces no inner event.
func BindEvent[A, B any](e *Event[A], f func(A) *Event[B]) *Event[B] {
	return derive(Future[B]{run: func(handler func(B)) func() {
		var (
			inner  *Event[B]
			cancel func()
		)
		release := func() {
			if inner == nil {
				return
			}
			cancel()
			inner.Cleanup()
			inner, cancel = nil, nil
		}
		outer := e.future.Run(func(v A) {
			release()
			next, ok := apply(f, v)
			if !ok || next == nil {
				return
			}
			inner = next
			cancel = next.Subscribe(handler)
		})
		return func() {
			outer()
			release()
		}
	}})
}

// SwitchEvents follows a changing source: occurrences of the current source
// are re-emitted through a single internal source event, so downstream
// consumers see one continuous occurrence sequence across switches. Each
// stream produced by sources disposes the prior source — unsubscribe, then
// Cleanup — and becomes the current one. Cleaning up the returned event
// releases the switching registration and the current source.
func SwitchEvents[A any](initial *Event[A], sources *Event[*Event[A]]) *Event[A] {
	out, emit := New[A]()
	current := initial
	cancel := current.Subscribe(emit)
	swap := sources.Subscribe(func(next *Event[A]) {
		if next == nil {
			return
		}
		cancel()
		current.Cleanup()
		current = next
		cancel = current.Subscribe(emit)
	})
	out.OnCleanup(func() {
		swap()
		cancel()
		current.Cleanup()
	})
	return out
}
