// Package pool implements a fixed-capacity, lock-free object pool.
//
// Unlike sync.Pool, a Pool[T] never grows past the capacity it was
// created with and never allocates after construction: Get returns nil
// once every slot is checked out, and Put is the only way a slot comes
// back. This is the allocation discipline the matching engine's hot
// path needs — order records are recycled through a bounded arena
// instead of trusting the garbage collector to keep up with churn.
package pool
