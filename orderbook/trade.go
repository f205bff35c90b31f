package orderbook

import (
	"time"

	"github.com/nanotrader/matchcore/price"
)

// Trade is an immutable, append-only execution record. Trades are never
// revised once emitted.
type Trade[S comparable] struct {
	MakerID OrderID
	TakerID OrderID
	Symbol  S
	Price   price.Price
	Qty     int64
	Time    time.Time
}
