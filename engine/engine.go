package engine

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nanotrader/matchcore/orderbook"
	"github.com/nanotrader/matchcore/pool"
	"github.com/nanotrader/matchcore/spsc"
)

// Engine is a single matching engine instance: one pool, one book per
// symbol, one ingress ring, one egress ring. It spawns no goroutines
// of its own — start, stop, and the ProcessOrders poll loop are all
// the caller's responsibility.
type Engine[S comparable] struct {
	pool    *pool.Pool[orderbook.Order[S]]
	books   map[S]*orderbook.OrderBook[S]
	ingress *spsc.Ring[Request[S]]
	egress  *spsc.Ring[Result[S]]
	metrics *Metrics

	running   atomic.Bool
	processed atomic.Uint64
}

// NewEngine constructs an Engine with the given configuration. reg
// may be nil to disable metrics.
func NewEngine[S comparable](cfg Config, reg prometheus.Registerer) *Engine[S] {
	return &Engine[S]{
		pool:    pool.New[orderbook.Order[S]](cfg.PoolCapacity),
		books:   make(map[S]*orderbook.OrderBook[S]),
		ingress: spsc.NewRing[Request[S]](nextPow2(cfg.RequestRingSize)),
		egress:  spsc.NewRing[Result[S]](nextPow2(cfg.ResultRingSize)),
		metrics: NewMetrics(reg),
	}
}

// Start marks the engine running. It does not spawn a thread; the
// caller must still drive ProcessOrders itself.
func (e *Engine[S]) Start() { e.running.Store(true) }

// Stop marks the engine stopped. It does not drain or discard
// anything already queued. ProcessOrders does not read the running
// flag, so queued requests stay on the rings until the caller next
// calls ProcessOrders.
func (e *Engine[S]) Stop() { e.running.Store(false) }

// Running reports the current running flag.
func (e *Engine[S]) Running() bool { return e.running.Load() }

// SubmitOrder enqueues req on ingress. Returns false without
// blocking if ingress is full.
func (e *Engine[S]) SubmitOrder(req Request[S]) bool {
	return e.ingress.TryPush(req)
}

// GetResult dequeues the next available Result from egress. Returns
// false without blocking if egress is empty.
func (e *Engine[S]) GetResult() (Result[S], bool) {
	return e.egress.TryPop()
}

// ProcessOrders drains ingress until it is empty or egress has no
// more room, processing exactly one request per iteration. It checks
// egress capacity BEFORE popping each request, so a request is never
// taken off ingress unless its result is guaranteed to fit on egress
// — the in-hand request is never processed and then lost to a full
// egress push.
func (e *Engine[S]) ProcessOrders() int {
	n := 0
	for !e.egress.Full() {
		req, ok := e.ingress.TryPop()
		if !ok {
			break
		}
		result := e.dispatch(req)
		e.egress.TryPush(result)
		e.processed.Add(1)
		e.metrics.recordResult(result.Status)
		e.metrics.recordTrades(len(result.Trades))
		n++
	}
	e.metrics.sample(e.pool.Available(), len(e.books))
	return n
}

// GetOrderBook returns the book for symbol, or nil if no order has
// ever referenced it.
func (e *Engine[S]) GetOrderBook(symbol S) *orderbook.OrderBook[S] {
	return e.books[symbol]
}

// GetOrderBookCount returns the number of live per-symbol books.
func (e *Engine[S]) GetOrderBookCount() int {
	return len(e.books)
}

// GetTotalOrders returns the number of live orders across all books.
func (e *Engine[S]) GetTotalOrders() int {
	total := 0
	for _, b := range e.books {
		total += b.GetOrderCount()
	}
	return total
}

// GetAvailableOrderCapacity returns the number of free slots left in
// the order pool.
func (e *Engine[S]) GetAvailableOrderCapacity() int64 {
	return e.pool.Available()
}

// GetProcessedOrders returns the number of results successfully
// pushed to egress since construction.
func (e *Engine[S]) GetProcessedOrders() uint64 {
	return e.processed.Load()
}

// ClearAllBooks drops every book and its resting orders. It does not
// return those orders' slots to the pool — callers that need the
// capacity back should not rely on ClearAllBooks for that; it exists
// for test and operator resets, not steady-state bookkeeping.
func (e *Engine[S]) ClearAllBooks() {
	e.books = make(map[S]*orderbook.OrderBook[S])
}

func (e *Engine[S]) bookFor(symbol S) *orderbook.OrderBook[S] {
	b, ok := e.books[symbol]
	if !ok {
		b = orderbook.NewOrderBook[S](symbol)
		e.books[symbol] = b
	}
	return b
}

func (e *Engine[S]) dispatch(req Request[S]) Result[S] {
	switch req.Type {
	case Add:
		return e.handleAdd(req)
	case Cancel:
		return e.handleCancel(req)
	case Modify:
		return e.handleModify(req)
	default:
		return Result[S]{Status: Rejected, OrderID: req.Order.ID}
	}
}
