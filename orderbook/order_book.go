package orderbook

import "github.com/nanotrader/matchcore/price"

// OrderBook is the per-symbol index: a price index per side, an id→order
// map, and a cached best bid/ask. It never matches orders; the matching
// engine drives matches purely through the operations below.
type OrderBook[S comparable] struct {
	Symbol S

	bids *RBTree[S]
	asks *RBTree[S]

	orders map[OrderID]*Order[S]

	bestBid    price.Price
	bestAsk    price.Price
	hasBestBid bool
	hasBestAsk bool
}

// NewOrderBook returns an empty book for symbol.
func NewOrderBook[S comparable](symbol S) *OrderBook[S] {
	return &OrderBook[S]{
		Symbol: symbol,
		bids:   NewRBTree[S](),
		asks:   NewRBTree[S](),
		orders: make(map[OrderID]*Order[S]),
	}
}

// AddOrder inserts o into the book. Returns false without modifying the
// book if o.ID already exists.
func (b *OrderBook[S]) AddOrder(o *Order[S]) bool {
	if _, exists := b.orders[o.ID]; exists {
		return false
	}
	b.orders[o.ID] = o

	if o.Side == Bid {
		b.bids.GetOrCreate(o.Price).Append(o)
		if !b.hasBestBid || o.Price > b.bestBid {
			b.bestBid = o.Price
			b.hasBestBid = true
		}
	} else {
		b.asks.GetOrCreate(o.Price).Append(o)
		if !b.hasBestAsk || o.Price < b.bestAsk {
			b.bestAsk = o.Price
			b.hasBestAsk = true
		}
	}
	return true
}

// RemoveOrder unlinks and forgets the order with id. Returns false if id
// is unknown. If the order's level becomes empty it is dropped from the
// price index; if the removed price was the cached best, the cache is
// recomputed from the price index (O(log L), see rbtree.go).
func (b *OrderBook[S]) RemoveOrder(id OrderID) bool {
	o, ok := b.orders[id]
	if !ok {
		return false
	}
	delete(b.orders, id)

	if o.Side == Bid {
		lvl := b.bids.Find(o.Price)
		if lvl == nil {
			invariantViolation(b.Symbol, id, "order %d present in id map but its bid level %d is missing", id, o.Price.Raw())
		}
		lvl.Unlink(o)
		if lvl.Empty() {
			b.bids.Delete(o.Price)
		}
		if b.hasBestBid && o.Price == b.bestBid {
			b.recomputeBestBid()
		}
	} else {
		lvl := b.asks.Find(o.Price)
		if lvl == nil {
			invariantViolation(b.Symbol, id, "order %d present in id map but its ask level %d is missing", id, o.Price.Raw())
		}
		lvl.Unlink(o)
		if lvl.Empty() {
			b.asks.Delete(o.Price)
		}
		if b.hasBestAsk && o.Price == b.bestAsk {
			b.recomputeBestAsk()
		}
	}
	return true
}

// UpdateOrderQuantity adjusts the owning level's cached total by the
// delta between the order's current Remain and oldRemain. Position and
// priority are untouched; the caller must already have mutated
// order.Remain before calling this.
func (b *OrderBook[S]) UpdateOrderQuantity(id OrderID, oldRemain int64) {
	o, ok := b.orders[id]
	if !ok {
		return
	}
	var lvl *PriceLevel[S]
	if o.Side == Bid {
		lvl = b.bids.Find(o.Price)
	} else {
		lvl = b.asks.Find(o.Price)
	}
	if lvl == nil {
		invariantViolation(b.Symbol, id, "order %d present in id map but its level %d is missing", id, o.Price.Raw())
	}
	lvl.UpdateQuantity(o, oldRemain)
}

// GetOrder returns the order with id, or nil if unknown.
func (b *OrderBook[S]) GetOrder(id OrderID) *Order[S] {
	return b.orders[id]
}

// GetOrderCount returns the number of live orders in the book.
func (b *OrderBook[S]) GetOrderCount() int {
	return len(b.orders)
}

// GetBestBid returns the highest resting bid price; ok is false if the
// bid side is empty.
func (b *OrderBook[S]) GetBestBid() (price.Price, bool) {
	return b.bestBid, b.hasBestBid
}

// GetBestAsk returns the lowest resting ask price; ok is false if the
// ask side is empty.
func (b *OrderBook[S]) GetBestAsk() (price.Price, bool) {
	return b.bestAsk, b.hasBestAsk
}

// HasBestBid reports whether the bid side is non-empty.
func (b *OrderBook[S]) HasBestBid() bool { return b.hasBestBid }

// HasBestAsk reports whether the ask side is non-empty.
func (b *OrderBook[S]) HasBestAsk() bool { return b.hasBestAsk }

// GetBuyLevel returns the bid-side level at p, or nil.
func (b *OrderBook[S]) GetBuyLevel(p price.Price) *PriceLevel[S] {
	return b.bids.Find(p)
}

// GetSellLevel returns the ask-side level at p, or nil.
func (b *OrderBook[S]) GetSellLevel(p price.Price) *PriceLevel[S] {
	return b.asks.Find(p)
}

// WalkBidLevels visits bid levels in descending price order until fn
// returns false. Used by the matching engine's FOK feasibility scan
// and by depth queries.
func (b *OrderBook[S]) WalkBidLevels(fn func(*PriceLevel[S]) bool) {
	b.bids.WalkDesc(fn)
}

// WalkAskLevels visits ask levels in ascending price order until fn
// returns false.
func (b *OrderBook[S]) WalkAskLevels(fn func(*PriceLevel[S]) bool) {
	b.asks.WalkAsc(fn)
}

// LevelQuote is a (price, total quantity) pair returned by depth queries.
type LevelQuote struct {
	Price price.Price
	Qty   int64
}

// GetBidLevels returns up to depth non-empty bid levels, descending.
func (b *OrderBook[S]) GetBidLevels(depth int) []LevelQuote {
	out := make([]LevelQuote, 0, depth)
	b.bids.WalkDesc(func(lvl *PriceLevel[S]) bool {
		if len(out) >= depth {
			return false
		}
		out = append(out, LevelQuote{Price: lvl.Price, Qty: lvl.TotalQty})
		return true
	})
	return out
}

// GetAskLevels returns up to depth non-empty ask levels, ascending.
func (b *OrderBook[S]) GetAskLevels(depth int) []LevelQuote {
	out := make([]LevelQuote, 0, depth)
	b.asks.WalkAsc(func(lvl *PriceLevel[S]) bool {
		if len(out) >= depth {
			return false
		}
		out = append(out, LevelQuote{Price: lvl.Price, Qty: lvl.TotalQty})
		return true
	})
	return out
}

// Clear drops every level and order and resets the best-price caches.
func (b *OrderBook[S]) Clear() {
	b.bids = NewRBTree[S]()
	b.asks = NewRBTree[S]()
	b.orders = make(map[OrderID]*Order[S])
	b.hasBestBid = false
	b.hasBestAsk = false
}

func (b *OrderBook[S]) recomputeBestBid() {
	lvl := b.bids.Max()
	if lvl == nil {
		b.hasBestBid = false
		return
	}
	b.bestBid = lvl.Price
	b.hasBestBid = true
}

func (b *OrderBook[S]) recomputeBestAsk() {
	lvl := b.asks.Min()
	if lvl == nil {
		b.hasBestAsk = false
		return
	}
	b.bestAsk = lvl.Price
	b.hasBestAsk = true
}
