package orderbook

import "github.com/nanotrader/matchcore/price"

// PriceLevel is an intrusive FIFO queue of orders resting at one price,
// with a cached aggregate remaining quantity. The head of the queue is
// always the next order the matching engine will trade against.
type PriceLevel[S comparable] struct {
	Price      price.Price
	head       *Order[S]
	tail       *Order[S]
	TotalQty   int64
	OrderCount int
}

// Head returns the oldest-arrival order at this level, or nil if empty.
func (p *PriceLevel[S]) Head() *Order[S] {
	return p.head
}

// Empty reports whether the level holds no orders.
func (p *PriceLevel[S]) Empty() bool {
	return p.OrderCount == 0
}

// Append links o at the tail of the queue, preserving arrival order.
func (p *PriceLevel[S]) Append(o *Order[S]) {
	o.prev = p.tail
	o.next = nil
	if p.tail == nil {
		p.head = o
	} else {
		p.tail.next = o
	}
	p.tail = o
	p.TotalQty += o.Remain
	p.OrderCount++
}

// Unlink removes o from wherever it sits in the queue — head, tail, or
// middle — in O(1), thanks to the intrusive prev/next handles.
func (p *PriceLevel[S]) Unlink(o *Order[S]) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		p.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		p.tail = o.prev
	}
	o.prev = nil
	o.next = nil

	p.TotalQty -= o.Remain
	p.OrderCount--
}

// UpdateQuantity adjusts the level's cached total by the delta between
// o's current remaining quantity and oldRemain, without touching o's
// position in the queue — a quantity change never loses queue priority
// on its own (see Engine's modify-driven re-queue policy for the one
// case where priority is intentionally lost: a quantity *increase*).
func (p *PriceLevel[S]) UpdateQuantity(o *Order[S], oldRemain int64) {
	p.TotalQty += o.Remain - oldRemain
}
