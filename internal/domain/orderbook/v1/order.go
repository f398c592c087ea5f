package orderbookv1

// Side represents the direction of an order.
type Side string

const (
	// SideBuy represents a buy (bid) order.
	SideBuy Side = "buy"
	// SideSell represents a sell (ask) order.
	SideSell Side = "sell"
)

// Valid reports whether the side is one of the two known values.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Opposite returns the other side of the book.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// OrderType represents the type of order.
type OrderType string

const (
	// OrderTypeLimit represents a limit order.
	OrderTypeLimit OrderType = "limit"
	// OrderTypeMarket represents a market order.
	OrderTypeMarket OrderType = "market"
)

// Status represents the lifecycle state of an order.
type Status string

const (
	// StatusResting means the order is on the book, untouched.
	StatusResting Status = "resting"
	// StatusPartiallyFilled means the order is on the book with some quantity executed.
	StatusPartiallyFilled Status = "partially_filled"
	// StatusFilled means the order has been fully executed.
	StatusFilled Status = "filled"
	// StatusCancelled means the order was withdrawn.
	StatusCancelled Status = "cancelled"
)

// Order represents a single order in the order book.
//
// ID and Sequence are both assigned by the book from monotonic counters.
// ID persists for the lifetime of the order, including modifies; Sequence
// is the time-priority tie-break and is reassigned when a modify loses
// priority.
type Order struct {
	ID       uint64    `json:"id"`
	Side     Side      `json:"side"`
	Type     OrderType `json:"type"`
	Price    float64   `json:"price"`
	Qty      int64     `json:"qty"` // remaining quantity
	OrigQty  int64     `json:"origQty"`
	Sequence uint64    `json:"sequence"`
	Status   Status    `json:"status"`
}

// NewOrder creates a new order with the given parameters.
func NewOrder(id uint64, side Side, orderType OrderType, price float64, qty int64, sequence uint64) *Order {
	return &Order{
		ID:       id,
		Side:     side,
		Type:     orderType,
		Price:    price,
		Qty:      qty,
		OrigQty:  qty,
		Sequence: sequence,
		Status:   StatusResting,
	}
}

// IsBuy checks if the order is a buy (bid) order.
func (o *Order) IsBuy() bool {
	return o.Side == SideBuy
}

// IsFilled checks if the order is filled (remaining quantity is zero).
func (o *Order) IsFilled() bool {
	return o.Qty == 0
}

// IsTerminal checks if the order has left the book for good.
func (o *Order) IsTerminal() bool {
	return o.Status == StatusFilled || o.Status == StatusCancelled
}
