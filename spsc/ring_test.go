package spsc

import (
	"sync"
	"testing"
)

func TestNewRingRejectsNonPowerOfTwo(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-power-of-two capacity")
		}
	}()
	NewRing[int](6)
}

func TestCapacityIsOneLessThanSlotCount(t *testing.T) {
	r := NewRing[int](8)
	if r.Capacity() != 7 {
		t.Fatalf("expected capacity 7 for a ring of 8 slots, got %d", r.Capacity())
	}
}

func TestPushPopFIFOOrder(t *testing.T) {
	r := NewRing[int](4)
	for i := 1; i <= 3; i++ {
		if !r.TryPush(i) {
			t.Fatalf("TryPush(%d) unexpectedly failed", i)
		}
	}
	for i := 1; i <= 3; i++ {
		v, ok := r.TryPop()
		if !ok || v != i {
			t.Fatalf("expected (%d, true), got (%d, %v)", i, v, ok)
		}
	}
	if _, ok := r.TryPop(); ok {
		t.Fatal("expected TryPop to fail on an empty ring")
	}
}

func TestTryPushFailsWhenFull(t *testing.T) {
	r := NewRing[int](4) // capacity 3
	for i := 0; i < 3; i++ {
		if !r.TryPush(i) {
			t.Fatalf("TryPush(%d) should have succeeded within capacity", i)
		}
	}
	if r.TryPush(99) {
		t.Fatal("expected TryPush to fail once the ring is at capacity")
	}
	if !r.Full() {
		t.Fatal("expected Full() to report true")
	}
}

func TestTryPopBatchDrainsInOrderAndBoundsToAvailable(t *testing.T) {
	r := NewRing[int](8)
	for i := 0; i < 5; i++ {
		r.TryPush(i)
	}
	out := make([]int, 10)
	n := r.TryPopBatch(out)
	if n != 5 {
		t.Fatalf("expected to pop 5 available items, got %d", n)
	}
	for i := 0; i < 5; i++ {
		if out[i] != i {
			t.Fatalf("out[%d] = %d, want %d", i, out[i], i)
		}
	}
	if !r.Empty() {
		t.Fatal("expected the ring to be empty after draining everything")
	}
}

func TestEmptyAndSizeTrackState(t *testing.T) {
	r := NewRing[int](4)
	if !r.Empty() || r.Size() != 0 {
		t.Fatal("expected a fresh ring to be empty with size 0")
	}
	r.TryPush(1)
	r.TryPush(2)
	if r.Empty() || r.Size() != 2 {
		t.Fatalf("expected size 2, got %d (empty=%v)", r.Size(), r.Empty())
	}
}

func TestConcurrentSingleProducerSingleConsumer(t *testing.T) {
	const n = 200000
	r := NewRing[int](1024)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			for !r.TryPush(i) {
			}
		}
	}()

	sum := 0
	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			var v int
			var ok bool
			for {
				v, ok = r.TryPop()
				if ok {
					break
				}
			}
			sum += v
		}
	}()

	wg.Wait()
	want := n * (n - 1) / 2
	if sum != want {
		t.Fatalf("sum = %d, want %d", sum, want)
	}
}
