package buffer

import (
	"math"
	"testing"
)

func TestNewRingEmpty(t *testing.T) {
	r := NewRing(4)
	if r.Cap() != 4 {
		t.Fatalf("Cap() = %d, want 4", r.Cap())
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", r.Len())
	}
	if r.Sum() != 0 {
		t.Fatalf("Sum() = %v, want 0", r.Sum())
	}
	if !math.IsNaN(r.Mean()) {
		t.Fatalf("Mean() = %v, want NaN on empty ring", r.Mean())
	}
	if r.Full() {
		t.Fatal("empty ring reports Full")
	}
}

func TestNewRingNegativeCapacity(t *testing.T) {
	r := NewRing(-3)
	if r.Cap() != 0 {
		t.Fatalf("Cap() = %d, want 0", r.Cap())
	}
	if _, evicted := r.Push(1); evicted {
		t.Fatal("zero-capacity ring must not report evictions")
	}
	if r.Len() != 0 || r.Full() {
		t.Fatal("zero-capacity ring must stay empty")
	}
}

func TestPushFillsThenEvictsOldest(t *testing.T) {
	r := NewRing(3)
	for _, x := range []float64{1, 2, 3} {
		if _, evicted := r.Push(x); evicted {
			t.Fatalf("Push(%v) evicted before ring was full", x)
		}
	}
	if !r.Full() {
		t.Fatal("ring should be full after 3 pushes")
	}
	if r.Sum() != 6 {
		t.Fatalf("Sum() = %v, want 6", r.Sum())
	}

	old, evicted := r.Push(4)
	if !evicted || old != 1 {
		t.Fatalf("Push(4) = (%v, %v), want (1, true)", old, evicted)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if r.Sum() != 9 {
		t.Fatalf("Sum() = %v, want 9", r.Sum())
	}
	if r.Mean() != 3 {
		t.Fatalf("Mean() = %v, want 3", r.Mean())
	}
}

func TestSnapshotOldestFirst(t *testing.T) {
	r := NewRing(3)
	for _, x := range []float64{1, 2, 3, 4, 5} {
		r.Push(x)
	}
	got := r.Snapshot(nil)
	want := []float64{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Snapshot()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSnapshotPartialAndReuse(t *testing.T) {
	r := NewRing(4)
	r.Push(7)
	r.Push(8)

	dst := make([]float64, 0, 8)
	got := r.Snapshot(dst)
	if len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Fatalf("Snapshot() = %v, want [7 8]", got)
	}
	if cap(got) != cap(dst) {
		t.Fatal("Snapshot should reuse dst capacity")
	}
}

func TestSumMatchesLiveEntries(t *testing.T) {
	r := NewRing(5)
	for i := range 23 {
		r.Push(float64(i%7) - 2.5)

		var want float64
		for _, v := range r.Snapshot(nil) {
			want += v
		}
		if math.Abs(r.Sum()-want) > 1e-12 {
			t.Fatalf("after %d pushes: Sum() = %v, want %v", i+1, r.Sum(), want)
		}
	}
}

func TestResyncRemovesDrift(t *testing.T) {
	r := NewRing(2)
	r.Push(1e16)
	r.Push(1)
	r.Push(1) // evicts 1e16; incremental sum loses the small terms
	r.Push(1)

	r.Resync()
	if r.Sum() != 2 {
		t.Fatalf("Sum() after Resync = %v, want 2", r.Sum())
	}
}

func TestReset(t *testing.T) {
	r := NewRing(3)
	for _, x := range []float64{1, 2, 3, 4} {
		r.Push(x)
	}
	r.Reset()
	if r.Len() != 0 || r.Sum() != 0 || r.Full() {
		t.Fatalf("Reset left state: len=%d sum=%v full=%v", r.Len(), r.Sum(), r.Full())
	}
	if r.Cap() != 3 {
		t.Fatalf("Cap() = %d, want 3 after Reset", r.Cap())
	}
	r.Push(10)
	if r.Mean() != 10 {
		t.Fatalf("Mean() = %v, want 10", r.Mean())
	}
}
