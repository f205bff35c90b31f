package orderbook

import (
	"time"

	"github.com/nanotrader/matchcore/price"
)

// OrderID globally identifies an order. Uniqueness is the submitter's
// responsibility; the matching engine relies on it.
type OrderID uint64

// Side is which side of the book an order rests on.
type Side int

const (
	Bid Side = iota
	Ask
)

func (s Side) String() string {
	if s == Ask {
		return "ask"
	}
	return "bid"
}

// OrderType distinguishes a resting-eligible Limit from a Market order,
// which ignores price for matching but retains it for reporting.
type OrderType int

const (
	Limit OrderType = iota
	Market
)

func (t OrderType) String() string {
	if t == Market {
		return "market"
	}
	return "limit"
}

// Order is the canonical representation of a live or incoming order.
//
// prev/next are an intrusive doubly linked list scoped to whichever
// PriceLevel currently holds the order; they are zeroed whenever the
// order is unlinked, including when it is returned to the pool.
type Order[S comparable] struct {
	ID      OrderID
	Symbol  S
	Price   price.Price
	Qty     int64 // original quantity
	Remain  int64 // remaining quantity
	Side    Side
	Type    OrderType
	IOC     bool
	FOK     bool
	Arrival time.Time

	prev *Order[S]
	next *Order[S]
}

// Reset clears an order back to its zero value so the pool can hand it
// out again without leaking state from a prior lease.
func (o *Order[S]) Reset() {
	*o = Order[S]{}
}

// IsMarket reports whether the order ignores price when matching.
func (o *Order[S]) IsMarket() bool {
	return o.Type == Market
}

// Crossable reports whether the order, at its own limit price (or lack
// thereof for a Market order), is willing to trade at restingPrice.
func (o *Order[S]) Crossable(restingPrice price.Price) bool {
	if o.IsMarket() {
		return true
	}
	if o.Side == Bid {
		return o.Price >= restingPrice
	}
	return o.Price <= restingPrice
}
