package engine

import (
	"runtime"
	"testing"

	"github.com/nanotrader/matchcore/orderbook"
)

// TestHighVolumeRestAndSweep pushes a large resting book on one side
// and then sweeps it with a single large incoming order on the other,
// checking that every resting order lands in the book and that the
// sweep leaves the book empty with no best ask.
func TestHighVolumeRestAndSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping load test in short mode")
	}

	const restingCount = 5000
	e := NewEngine[int](Config{
		RequestRingSize: 1 << 13,
		ResultRingSize:  1 << 13,
		PoolCapacity:    1 << 14,
	}, nil)

	var initial runtime.MemStats
	runtime.ReadMemStats(&initial)

	var totalRestingQty int64
	for i := 0; i < restingCount; i++ {
		price := 100.00 + float64(i%50)*0.01
		qty := int64(1 + i%20)
		totalRestingQty += qty
		if !e.SubmitOrder(Request[int]{Type: Add, Order: newLimit(orderbook.OrderID(i+1), 1, orderbook.Ask, price, qty)}) {
			t.Fatalf("SubmitOrder failed at resting order %d", i)
		}
	}
	for e.GetOrderBook(1) == nil || e.GetTotalOrders() < restingCount {
		if e.ProcessOrders() == 0 {
			break
		}
		drainResults(e)
	}
	if got := e.GetTotalOrders(); got != restingCount {
		t.Fatalf("expected %d resting orders, got %d", restingCount, got)
	}

	sweepID := orderbook.OrderID(restingCount + 1)
	sweep := newLimit(sweepID, 1, orderbook.Bid, 200.00, totalRestingQty)
	if !e.SubmitOrder(Request[int]{Type: Add, Order: sweep}) {
		t.Fatal("SubmitOrder failed for the sweeping order")
	}
	for e.ProcessOrders() > 0 {
		drainResults(e)
	}
	drainResults(e)

	book := e.GetOrderBook(1)
	if book.GetOrderCount() != 0 {
		t.Fatalf("expected the sweep to empty the book, %d orders remain", book.GetOrderCount())
	}
	if book.HasBestAsk() {
		t.Fatal("expected no resting asks after a full sweep")
	}

	var after runtime.MemStats
	runtime.ReadMemStats(&after)
	t.Logf("heap delta after %d orders: %d bytes", restingCount, after.HeapAlloc-initial.HeapAlloc)
}

func drainResults[S comparable](e *Engine[S]) {
	for {
		if _, ok := e.GetResult(); !ok {
			return
		}
	}
}

func BenchmarkProcessOrdersRestingOnly(b *testing.B) {
	e := NewEngine[int](Config{
		RequestRingSize: 1 << 16,
		ResultRingSize:  1 << 16,
		PoolCapacity:    1 << 20,
	}, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		price := 100.00 + float64(i%1000)*0.01
		e.SubmitOrder(Request[int]{Type: Add, Order: newLimit(orderbook.OrderID(i+1), 1, orderbook.Bid, price, 10)})
		if e.egress.Full() {
			drainResults(e)
		}
		e.ProcessOrders()
	}
}
