package engine

import (
	"fmt"

	"github.com/nanotrader/matchcore/internal/logging"
)

// handleAdd allocates an order from the pool, optionally probes FOK
// feasibility, runs the matching loop, and applies residual policy.
func (e *Engine[S]) handleAdd(req Request[S]) Result[S] {
	book := e.bookFor(req.Order.Symbol)

	if book.GetOrder(req.Order.ID) != nil {
		return Result[S]{Status: Rejected, OrderID: req.Order.ID}
	}

	o := e.pool.Get()
	if o == nil {
		logging.PoolExhausted(fmt.Sprint(req.Order.Symbol), "Add")
		return Result[S]{Status: Rejected, OrderID: req.Order.ID}
	}
	*o = req.Order
	o.Remain = o.Qty

	if o.FOK && !feasible(book, o) {
		id := o.ID
		o.Reset()
		e.pool.Put(o)
		logging.ExpectedRejection(fmt.Sprint(req.Order.Symbol), uint64(id), "FOK unfillable")
		return Result[S]{Status: Rejected, OrderID: id}
	}

	trades := e.match(book, o)

	switch {
	case o.Remain == 0:
		id := o.ID
		o.Reset()
		e.pool.Put(o)
		return Result[S]{Status: Matched, OrderID: id, Trades: trades}

	case o.IOC, o.IsMarket():
		// A Market order that isn't fully filled never rests: it has
		// no price to rest at. Its residual is discarded the same way
		// an IOC residual is.
		id := o.ID
		o.Reset()
		e.pool.Put(o)
		if len(trades) > 0 {
			logging.ExpectedRejection(fmt.Sprint(req.Order.Symbol), uint64(id), "residual discarded")
			return Result[S]{Status: Matched, OrderID: id, Trades: trades}
		}
		logging.ExpectedRejection(fmt.Sprint(req.Order.Symbol), uint64(id), "no fill")
		return Result[S]{Status: Rejected, OrderID: id}

	default:
		book.AddOrder(o)
		status := Added
		if len(trades) > 0 {
			status = Matched
		}
		return Result[S]{Status: status, OrderID: o.ID, Trades: trades}
	}
}

// handleCancel unlinks and retires a resting order.
func (e *Engine[S]) handleCancel(req Request[S]) Result[S] {
	book := e.bookFor(req.Order.Symbol)
	o := book.GetOrder(req.Order.ID)
	if o == nil {
		return Result[S]{Status: Rejected, OrderID: req.Order.ID}
	}
	id := o.ID
	book.RemoveOrder(id)
	o.Reset()
	e.pool.Put(o)
	return Result[S]{Status: Cancelled, OrderID: id}
}

// handleModify applies a quantity-only change to a resting order. A
// new quantity of zero behaves as Cancel. A decrease (or no-op)
// preserves queue position; an increase loses it by unlinking and
// re-appending at the tail of its price level — standard exchange
// behavior, and a deliberate divergence from a reference that
// preserves position unconditionally.
func (e *Engine[S]) handleModify(req Request[S]) Result[S] {
	book := e.bookFor(req.Order.Symbol)
	o := book.GetOrder(req.Order.ID)
	if o == nil {
		return Result[S]{Status: Rejected, OrderID: req.Order.ID}
	}

	if req.NewQuantity == 0 {
		id := o.ID
		book.RemoveOrder(id)
		o.Reset()
		e.pool.Put(o)
		return Result[S]{Status: Cancelled, OrderID: id}
	}

	if req.NewQuantity > o.Remain {
		book.RemoveOrder(o.ID)
		o.Qty = req.NewQuantity
		o.Remain = req.NewQuantity
		book.AddOrder(o)
	} else {
		old := o.Remain
		o.Qty = req.NewQuantity
		o.Remain = req.NewQuantity
		book.UpdateOrderQuantity(o.ID, old)
	}

	return Result[S]{Status: Modified, OrderID: o.ID}
}
