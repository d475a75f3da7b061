// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import (
	"github.com/juju/loggo/v2"
)

// Recovery wrappers around user-supplied code. A panic inside a transform,
// predicate, fold step, subscriber handler, or release hook is confined to
// the occurrence (or hook) that triggered it: it is logged and the
// surrounding delivery continues.

var logger = loggo.GetLogger("pulse")

// deliver invokes a subscriber handler with v, isolating a panic so the
// remaining subscribers of the same notification still run.
func deliver[A any](handler func(A), v A) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("subscriber handler panicked: %v", p)
		}
	}()
	handler(v)
}

// apply invokes a user transform. ok is false when f panicked; the caller
// drops the occurrence and keeps the registration live.
func apply[A, B any](f func(A) B, v A) (out B, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("transform panicked: %v", p)
		}
	}()
	return f(v), true
}

// applyPred invokes a filter predicate. ok is false when pred panicked;
// the occurrence is dropped in that case regardless of keep.
func applyPred[A any](pred func(A) bool, v A) (keep, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("predicate panicked: %v", p)
		}
	}()
	return pred(v), true
}

// applyFold invokes a fold step. ok is false when f panicked; the caller
// leaves the accumulator unchanged for that occurrence.
func applyFold[B, A any](f func(B, A) B, acc B, v A) (out B, ok bool) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("fold step panicked: %v", p)
		}
	}()
	return f(acc, v), true
}

// runHook runs a cleanup release hook, isolating a panic so the remaining
// hooks still run.
func runHook(hook func()) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorf("release hook panicked: %v", p)
		}
	}()
	hook()
}
