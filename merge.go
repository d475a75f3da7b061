// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

// MergeEvents interleaves two occurrence streams. Each registration on the
// merged event registers on both operands and forwards whichever side's
// occurrences arrive, as separate notifications in physical arrival order.
// When both operands fire as a consequence of the same external trigger the
// relative order is implementation-defined.
func MergeEvents[A any](a, b *Event[A]) *Event[A] {
	return derive(Future[A]{run: func(handler func(A)) func() {
		cancelA := a.future.Run(handler)
		cancelB := b.future.Run(handler)
		return func() {
			cancelA()
			cancelB()
		}
	}})
}
