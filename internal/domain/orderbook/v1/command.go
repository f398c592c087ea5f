package orderbookv1

// CommandType represents the kind of mutating command issued to the book.
type CommandType string

const (
	// CommandNewLimit submits a new limit order.
	CommandNewLimit CommandType = "new_limit"
	// CommandNewMarket submits a new market order.
	CommandNewMarket CommandType = "new_market"
	// CommandCancel withdraws a resting order.
	CommandCancel CommandType = "cancel"
	// CommandModify changes price and/or quantity of a resting order.
	CommandModify CommandType = "modify"
)

// Command is the closed set of operations the book accepts. The engine
// switches over Type exhaustively; unknown types are rejected, never ignored.
type Command struct {
	Type CommandType `json:"type"`

	// NewLimit / NewMarket fields.
	Side  Side    `json:"side,omitempty"`
	Price float64 `json:"price,omitempty"`
	Qty   int64   `json:"qty,omitempty"`

	// Cancel / Modify fields.
	OrderID  uint64  `json:"orderID,omitempty"`
	NewPrice float64 `json:"newPrice,omitempty"`
	NewQty   int64   `json:"newQty,omitempty"`
}

// NewLimitCommand builds a limit submission command.
func NewLimitCommand(side Side, price float64, qty int64) Command {
	return Command{Type: CommandNewLimit, Side: side, Price: price, Qty: qty}
}

// NewMarketCommand builds a market submission command.
func NewMarketCommand(side Side, qty int64) Command {
	return Command{Type: CommandNewMarket, Side: side, Qty: qty}
}

// CancelCommand builds a cancel command for the given order id.
func CancelCommand(orderID uint64) Command {
	return Command{Type: CommandCancel, OrderID: orderID}
}

// ModifyCommand builds a modify command for the given order id.
func ModifyCommand(orderID uint64, newPrice float64, newQty int64) Command {
	return Command{Type: CommandModify, OrderID: orderID, NewPrice: newPrice, NewQty: newQty}
}

// Result is returned by every successfully applied command.
//
// Unfilled is the market-order remainder that found no liquidity; it is
// reported here rather than raised as an error, together with whatever
// fills did occur.
type Result struct {
	OrderID  uint64 `json:"orderID"`
	Fills    []Fill `json:"fills,omitempty"`
	Unfilled int64  `json:"unfilled,omitempty"`
	Status   Status `json:"status"`
}

// FilledQty returns the total executed quantity across the result's fills.
func (r *Result) FilledQty() int64 {
	var total int64
	for _, f := range r.Fills {
		total += f.Qty
	}
	return total
}
