package engine

import (
	"time"

	"github.com/nanotrader/matchcore/orderbook"
)

// feasible reports whether the opposing side of book holds at least
// incoming.Remain of combined size at prices incoming can cross. It
// is the pre-match probe a FOK order must pass before any fill is
// applied: computing this first, instead of matching greedily and
// unwinding on shortfall, is what keeps a rejected FOK from leaving
// any partial effect on the book.
func feasible[S comparable](book *orderbook.OrderBook[S], incoming *orderbook.Order[S]) bool {
	var total int64
	walk := func(lvl *orderbook.PriceLevel[S]) bool {
		total += lvl.TotalQty
		return total < incoming.Remain
	}
	if incoming.Side == orderbook.Bid {
		book.WalkAskLevels(func(lvl *orderbook.PriceLevel[S]) bool {
			if !incoming.IsMarket() && lvl.Price.Raw() > incoming.Price.Raw() {
				return false
			}
			return walk(lvl)
		})
	} else {
		book.WalkBidLevels(func(lvl *orderbook.PriceLevel[S]) bool {
			if !incoming.IsMarket() && lvl.Price.Raw() < incoming.Price.Raw() {
				return false
			}
			return walk(lvl)
		})
	}
	return total >= incoming.Remain
}

// match runs the price-time priority matching loop for incoming
// against the opposing side of book, mutating resting orders and the
// book in place, and returns the ordered group of trades produced.
// incoming.Remain is decremented as it fills; the caller decides what
// to do with any residual once match returns.
func (e *Engine[S]) match(book *orderbook.OrderBook[S], incoming *orderbook.Order[S]) []orderbook.Trade[S] {
	var trades []orderbook.Trade[S]

	for incoming.Remain > 0 {
		if incoming.Side == orderbook.Bid {
			ask, ok := book.GetBestAsk()
			if !ok || !incoming.Crossable(ask) {
				break
			}
			level := book.GetSellLevel(ask)
			if level == nil {
				invariantViolation(book.Symbol, incoming.ID, "best ask %d has no level", ask.Raw())
			}
			resting := level.Head()
			if resting == nil {
				invariantViolation(book.Symbol, incoming.ID, "best ask level %d is empty", ask.Raw())
			}
			trades = append(trades, e.fill(book, incoming, resting))
		} else {
			bid, ok := book.GetBestBid()
			if !ok || !incoming.Crossable(bid) {
				break
			}
			level := book.GetBuyLevel(bid)
			if level == nil {
				invariantViolation(book.Symbol, incoming.ID, "best bid %d has no level", bid.Raw())
			}
			resting := level.Head()
			if resting == nil {
				invariantViolation(book.Symbol, incoming.ID, "best bid level %d is empty", bid.Raw())
			}
			trades = append(trades, e.fill(book, incoming, resting))
		}
	}
	return trades
}

// fill executes one resting-order fill at the maker's own price,
// updates both orders' remaining quantity, and retires resting into
// the pool if it is now fully filled.
func (e *Engine[S]) fill(book *orderbook.OrderBook[S], incoming, resting *orderbook.Order[S]) orderbook.Trade[S] {
	qty := min(incoming.Remain, resting.Remain)
	oldRestingRemain := resting.Remain

	resting.Remain -= qty
	incoming.Remain -= qty

	makerID := resting.ID
	makerPrice := resting.Price

	if resting.Remain == 0 {
		book.RemoveOrder(makerID)
		resting.Reset()
		e.pool.Put(resting)
	} else {
		book.UpdateOrderQuantity(makerID, oldRestingRemain)
	}

	return orderbook.Trade[S]{
		MakerID: makerID,
		TakerID: incoming.ID,
		Symbol:  book.Symbol,
		Price:   makerPrice,
		Qty:     qty,
		Time:    time.Now(),
	}
}
