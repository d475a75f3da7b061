// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

// MapEvent applies f to each occurrence. The result is pure future
// composition: it carries no subscriber state of its own beyond the usual
// cleanup tracking. A panic in f drops that occurrence only.
func MapEvent[A, B any](e *Event[A], f func(A) B) *Event[B] {
	return derive(MapFuture(e.future, f))
}

// FilterEvent forwards only the occurrences for which pred returns true.
// A panic in pred is logged and the occurrence dropped.
func FilterEvent[A any](e *Event[A], pred func(A) bool) *Event[A] {
	return derive(Future[A]{run: func(handler func(A)) func() {
		return e.future.Run(func(v A) {
			keep, ok := applyPred(pred, v)
			if !ok || !keep {
				return
			}
			handler(v)
		})
	}})
}
