package orderbook

import "testing"

func newTestOrder(id OrderID, remain int64) *Order[string] {
	return &Order[string]{ID: id, Symbol: "BTC-USD", Remain: remain, Qty: remain}
}

func TestPriceLevelAppendOrdering(t *testing.T) {
	lvl := &PriceLevel[string]{}
	a := newTestOrder(1, 10)
	b := newTestOrder(2, 20)
	lvl.Append(a)
	lvl.Append(b)

	if lvl.Head() != a {
		t.Error("expected head to be the first appended order")
	}
	if lvl.TotalQty != 30 {
		t.Errorf("expected total 30, got %d", lvl.TotalQty)
	}
	if lvl.OrderCount != 2 {
		t.Errorf("expected count 2, got %d", lvl.OrderCount)
	}
}

func TestPriceLevelUnlinkHeadMiddleTail(t *testing.T) {
	lvl := &PriceLevel[string]{}
	a, b, c := newTestOrder(1, 1), newTestOrder(2, 1), newTestOrder(3, 1)
	lvl.Append(a)
	lvl.Append(b)
	lvl.Append(c)

	lvl.Unlink(b) // middle
	if lvl.Head() != a || lvl.OrderCount != 2 {
		t.Fatal("unlinking the middle order corrupted the queue")
	}

	lvl.Unlink(a) // now head
	if lvl.Head() != c || lvl.OrderCount != 1 {
		t.Fatal("unlinking the head order corrupted the queue")
	}

	lvl.Unlink(c) // now tail (and head)
	if !lvl.Empty() || lvl.TotalQty != 0 {
		t.Fatal("expected an empty level with zero total after unlinking everything")
	}
}

func TestPriceLevelUpdateQuantityPreservesPosition(t *testing.T) {
	lvl := &PriceLevel[string]{}
	a := newTestOrder(1, 100)
	b := newTestOrder(2, 50)
	lvl.Append(a)
	lvl.Append(b)

	a.Remain = 40
	lvl.UpdateQuantity(a, 100)

	if lvl.TotalQty != 90 {
		t.Errorf("expected total 90 after quantity update, got %d", lvl.TotalQty)
	}
	if lvl.Head() != a {
		t.Error("a quantity-only update must not change queue position")
	}
}
