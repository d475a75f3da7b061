// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pulse_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/pulse"
	"code.hybscloud.com/pulse/pulsetest"
)

func TestZipEventsWaitsForBothSides(t *testing.T) {
	a, emitA := pulse.New[int]()
	b, emitB := pulse.New[string]()
	zipped := pulse.ZipEvents(a, b)

	rec := pulsetest.NewRecorder[pulse.Pair[int, string]]()
	cancel := zipped.Subscribe(rec.Handle)
	defer cancel()

	emitA(1)
	if rec.Len() != 0 {
		t.Fatalf("pair emitted before both sides produced: %v", rec.Values())
	}
	emitB("x")
	emitA(2)

	want := []pulse.Pair[int, string]{
		{Fst: 1, Snd: "x"},
		{Fst: 2, Snd: "x"},
	}
	if got := rec.Values(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestZipEventsLastWriteWinsPerSide(t *testing.T) {
	a, emitA := pulse.New[int]()
	b, emitB := pulse.New[int]()
	zipped := pulse.ZipEvents(a, b)

	rec := pulsetest.NewRecorder[pulse.Pair[int, int]]()
	cancel := zipped.Subscribe(rec.Handle)
	defer cancel()

	// Multiple left occurrences before the right side produces: only the
	// latest left value is retained, no backlog of pairs.
	emitA(1)
	emitA(2)
	emitA(3)
	emitB(7)

	want := []pulse.Pair[int, int]{{Fst: 3, Snd: 7}}
	if got := rec.Values(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestZipEventsCancelReleasesBothSides(t *testing.T) {
	a, emitA := pulse.New[int]()
	b, emitB := pulse.New[int]()
	zipped := pulse.ZipEvents(a, b)

	rec := pulsetest.NewRecorder[pulse.Pair[int, int]]()
	cancel := zipped.Subscribe(rec.Handle)
	emitA(1)
	emitB(2)
	cancel()
	emitA(3)

	want := []pulse.Pair[int, int]{{Fst: 1, Snd: 2}}
	if got := rec.Values(); !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
