// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// ZipEvents pairs the latest occurrence of each side. Nothing is emitted
// until both sides have produced at least one value; from then on every
// occurrence of either side re-emits a pair built from that value and the
// other side's last-known value. Only the latest value per side is
// retained — there is no buffering of earlier occurrences.
func ZipEvents[A, B any](a *Event[A], b *Event[B]) *Event[Pair[A, B]] {
	return derive(Future[Pair[A, B]]{run: func(handler func(Pair[A, B])) func() {
		var (
			lastA A
			lastB B
			hasA  bool
			hasB  bool
		)
		cancelA := a.future.Run(func(v A) {
			lastA, hasA = v, true
			if hasB {
				handler(Pair[A, B]{Fst: lastA, Snd: lastB})
			}
		})
		cancelB := b.future.Run(func(v B) {
			lastB, hasB = v, true
			if hasA {
				handler(Pair[A, B]{Fst: lastA, Snd: lastB})
			}
		})
		return func() {
			cancelA()
			cancelB()
		}
	}})
}
