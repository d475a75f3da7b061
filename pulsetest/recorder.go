// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pulsetest provides fixtures for testing pulse-based code:
// an occurrence recorder and a release counter.
package pulsetest

import "sync"

// Recorder records occurrences for tests and diagnostics.
//
// Recorder is safe under concurrent Handle calls, so it can observe
// adapter-driven events as well as synchronous sources.
type Recorder[A any] struct {
	mu     sync.Mutex
	values []A
}

// NewRecorder constructs an empty Recorder.
func NewRecorder[A any]() *Recorder[A] {
	return &Recorder[A]{}
}

// Handle appends the occurrence to the recorder. Pass the method value as
// a subscriber handler.
func (r *Recorder[A]) Handle(v A) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.values = append(r.values, v)
	r.mu.Unlock()
}

// Values returns a snapshot copy of the recorded occurrences.
func (r *Recorder[A]) Values() []A {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]A, len(r.values))
	copy(cp, r.values)
	return cp
}

// Len returns the number of recorded occurrences.
func (r *Recorder[A]) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Reset clears the recorder.
func (r *Recorder[A]) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.values = nil
	r.mu.Unlock()
}

// ReleaseCounter counts release invocations. Install Release as a cleanup
// hook, or wrap a cancel capability, to verify how many times a resource
// was let go.
type ReleaseCounter struct {
	mu sync.Mutex
	n  int
}

// Release records one release. Pass the method value wherever a release
// callback is expected.
func (c *ReleaseCounter) Release() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

// Count returns the number of releases recorded so far.
func (c *ReleaseCounter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
