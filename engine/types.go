package engine

import "github.com/nanotrader/matchcore/orderbook"

// RequestType selects which handler a Request is routed to.
type RequestType int

const (
	Add RequestType = iota
	Cancel
	Modify
)

func (t RequestType) String() string {
	switch t {
	case Add:
		return "Add"
	case Cancel:
		return "Cancel"
	case Modify:
		return "Modify"
	default:
		return "Unknown"
	}
}

// Request is one unit of ingress work. For Add, Order carries the
// full incoming order. For Cancel and Modify, only Order.ID and
// Order.Symbol are read; Modify additionally reads NewQuantity.
type Request[S comparable] struct {
	Type        RequestType
	Order       orderbook.Order[S]
	NewQuantity int64
}

// Status is the outcome reported on a Result.
type Status int

const (
	Added Status = iota
	Matched
	Cancelled
	Modified
	Rejected
)

func (s Status) String() string {
	switch s {
	case Added:
		return "Added"
	case Matched:
		return "Matched"
	case Cancelled:
		return "Cancelled"
	case Modified:
		return "Modified"
	case Rejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Result is the one response produced per Request, pushed to egress.
// Trades is the ordered, possibly-empty group of fills this request
// produced; it is reported atomically within a single Result.
type Result[S comparable] struct {
	Status  Status
	OrderID orderbook.OrderID
	Trades  []orderbook.Trade[S]
}
