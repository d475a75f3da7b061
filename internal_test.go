// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse

import (
	"slices"
	"testing"
)

func TestObserveWithoutImmediateDelivery(t *testing.T) {
	r := NewReactive(1)
	var got []int
	cancel := r.observe(func(v int) { got = append(got, v) }, false)

	r.update(2)
	if !slices.Equal(got, []int{2}) {
		t.Fatalf("got %v, want [2]", got)
	}
	cancel()
	r.update(3)
	if !slices.Equal(got, []int{2}) {
		t.Fatalf("canceled observer still notified: %v", got)
	}
}

func TestUpdateNotifiesInRegistrationOrder(t *testing.T) {
	r := NewReactive(0)
	var order []string
	r.observe(func(int) { order = append(order, "a") }, false)
	r.observe(func(int) { order = append(order, "b") }, false)
	r.observe(func(int) { order = append(order, "c") }, false)

	r.update(1)
	if !slices.Equal(order, []string{"a", "b", "c"}) {
		t.Fatalf("got %v, want [a b c]", order)
	}
}

func TestPromotionHappensOnce(t *testing.T) {
	e, emit := New[int]()
	if e.source.cell != nil {
		t.Fatalf("source bound before first emission")
	}
	emit(1)
	cell := e.source.cell
	if cell == nil {
		t.Fatalf("source not bound by first emission")
	}
	emit(2)
	if e.source.cell != cell {
		t.Fatalf("second emission re-promoted the source")
	}
	if cell.Get() != 2 {
		t.Fatalf("cell holds %d, want 2", cell.Get())
	}
}

func TestPromotionDrainsPendingQueue(t *testing.T) {
	e, emit := New[int]()
	e.Subscribe(func(int) {})
	e.Subscribe(func(int) {})
	if e.source.pending.Len() != 2 {
		t.Fatalf("pending queue has %d entries, want 2", e.source.pending.Len())
	}
	emit(1)
	if e.source.pending.Len() != 0 {
		t.Fatalf("pending queue not drained: %d entries", e.source.pending.Len())
	}
	if len(e.source.cell.observers) != 2 {
		t.Fatalf("cell has %d observers, want 2", len(e.source.cell.observers))
	}
}

func TestUpdateSnapshotsObserverList(t *testing.T) {
	// A handler registering a new observer mid-notification must not make
	// that observer see the in-flight value.
	r := NewReactive(0)
	var lateGot []int
	r.observe(func(int) {
		r.observe(func(v int) { lateGot = append(lateGot, v) }, false)
	}, false)

	r.update(1)
	if len(lateGot) != 0 {
		t.Fatalf("late observer saw in-flight value: %v", lateGot)
	}
	r.update(2)
	// One registration per update that ran the registering handler.
	if !slices.Equal(lateGot, []int{2}) {
		t.Fatalf("got %v, want [2]", lateGot)
	}
}
