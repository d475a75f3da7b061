// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import "reflect"

// FoldEvent accumulates occurrences into a reactive value seeded with
// initial. Each occurrence computes f(acc, value) and publishes the result
// through the privileged update path. A panic in f leaves the accumulator
// unchanged for that occurrence — skip, not reset. The result's Cleanup
// releases the registration on e.
func FoldEvent[A, B any](e *Event[A], initial B, f func(B, A) B) *Reactive[B] {
	acc := NewReactive(initial)
	cancel := e.Subscribe(func(v A) {
		next, ok := applyFold(f, acc.current, v)
		if !ok {
			return
		}
		acc.update(next)
	})
	acc.releases = append(acc.releases, cancel)
	return acc
}

// stepperEntry is one cached stepper cell, keyed by its seed.
type stepperEntry[A any] struct {
	seed A
	cell *Reactive[A]
}

// Stepper converts the event into a reactive value seeded with initial and
// driven by the event's occurrences. The result is cached per seed (deep
// equality): repeated calls with an equal seed return the identical cell,
// while a distinct seed produces an independent cell with its own cache
// entry. Cached cells are released by the event's Cleanup. A stepper taken
// after Cleanup is inert: it holds the seed, is never driven, and is not
// cached, since the event will never release it.
func (e *Event[A]) Stepper(initial A) *Reactive[A] {
	for _, st := range e.steppers {
		if reflect.DeepEqual(st.seed, initial) {
			return st.cell
		}
	}
	cell := NewReactive(initial)
	if e.dead {
		return cell
	}
	cancel := e.Subscribe(func(v A) {
		cell.update(v)
	})
	cell.releases = append(cell.releases, cancel)
	e.steppers = append(e.steppers, stepperEntry[A]{seed: initial, cell: cell})
	return cell
}
