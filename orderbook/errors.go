package orderbook

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/nanotrader/matchcore/internal/logging"
)

// invariantViolation logs and panics with an assertion-style error for
// states the book's own bookkeeping should make unreachable (e.g. an
// id present in the id map but absent from its level). Per the error
// handling design, this is the one case in the core that is allowed
// to panic: everything else is an expected outcome encoded into a
// result value.
func invariantViolation(symbol any, orderID OrderID, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logging.InvariantViolation(fmt.Sprint(symbol), uint64(orderID), msg)
	panic(errors.AssertionFailedf(msg))
}
