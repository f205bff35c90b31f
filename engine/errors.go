package engine

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/nanotrader/matchcore/internal/logging"
	"github.com/nanotrader/matchcore/orderbook"
)

// invariantViolation logs and panics for a matching-loop state the
// order book's own invariants should make unreachable, e.g. a best
// price reported by the book whose level turns out empty. Mirrors
// orderbook's invariantViolation; kept separate because engine cannot
// reach into orderbook's unexported helper.
func invariantViolation(symbol any, orderID orderbook.OrderID, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logging.InvariantViolation(fmt.Sprint(symbol), uint64(orderID), msg)
	panic(errors.AssertionFailedf(msg))
}
