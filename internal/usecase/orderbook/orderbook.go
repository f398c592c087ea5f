// Package orderbook implements a deterministic price-time priority limit
// order book for a single instrument.
//
// The book is logically single-threaded: every mutating command is an
// indivisible synchronous step. A single RWMutex serializes callers that
// embed the book in a concurrent host; there is no finer-grained locking
// because interleaved mutation would break the FIFO and price-ordering
// invariants anyway.
package orderbook

import (
	"fmt"
	"sync"

	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
)

// Orderbook composes both ladders and the id registry, and exposes the
// command surface. Order ids and sequence numbers are drawn from monotonic
// counters owned by the book; fills draw their sequence from the same
// counter, so identical command streams replay to identical fill streams.
type Orderbook struct {
	mu     sync.RWMutex
	bids   *orderbookv1.Ladder
	asks   *orderbookv1.Ladder
	orders map[uint64]*orderbookv1.Order // orderID -> resting order

	lastID  uint64
	lastSeq uint64
}

// NewOrderbook creates an empty orderbook.
func NewOrderbook() *Orderbook {
	return &Orderbook{
		bids:   orderbookv1.NewLadder(orderbookv1.SideBuy),
		asks:   orderbookv1.NewLadder(orderbookv1.SideSell),
		orders: make(map[uint64]*orderbookv1.Order),
	}
}

// Apply dispatches a command to the matching operation. Unknown command
// types fail with ErrInvalidCommand.
func (ob *Orderbook) Apply(cmd orderbookv1.Command) (*orderbookv1.Result, error) {
	switch cmd.Type {
	case orderbookv1.CommandNewLimit:
		return ob.PlaceLimit(cmd.Side, cmd.Price, cmd.Qty)
	case orderbookv1.CommandNewMarket:
		return ob.PlaceMarket(cmd.Side, cmd.Qty)
	case orderbookv1.CommandCancel:
		return ob.Cancel(cmd.OrderID)
	case orderbookv1.CommandModify:
		return ob.Modify(cmd.OrderID, cmd.NewPrice, cmd.NewQty)
	default:
		return nil, fmt.Errorf("%w: %q", orderbookv1.ErrInvalidCommand, cmd.Type)
	}
}

// PlaceLimit submits a limit order: it matches immediately while it crosses
// the opposite best, then rests any remainder at the tail of its level.
func (ob *Orderbook) PlaceLimit(side orderbookv1.Side, price float64, qty int64) (*orderbookv1.Result, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %q", orderbookv1.ErrInvalidSide, side)
	}
	if price <= 0 {
		return nil, fmt.Errorf("%w: got %f", orderbookv1.ErrInvalidPrice, price)
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidQty, qty)
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	order := orderbookv1.NewOrder(ob.nextID(), side, orderbookv1.OrderTypeLimit, price, qty, ob.nextSeq())
	fills := ob.match(order)
	ob.settle(order, fills)

	return &orderbookv1.Result{
		OrderID: order.ID,
		Fills:   fills,
		Status:  order.Status,
	}, nil
}

// PlaceMarket submits a market order. It sweeps the opposite ladder until
// the quantity or the liquidity runs out and never rests: the remainder is
// reported via Result.Unfilled, not silently dropped.
func (ob *Orderbook) PlaceMarket(side orderbookv1.Side, qty int64) (*orderbookv1.Result, error) {
	if !side.Valid() {
		return nil, fmt.Errorf("%w: %q", orderbookv1.ErrInvalidSide, side)
	}
	if qty <= 0 {
		return nil, fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidQty, qty)
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	order := orderbookv1.NewOrder(ob.nextID(), side, orderbookv1.OrderTypeMarket, 0, qty, ob.nextSeq())
	fills := ob.match(order)

	if order.Qty == 0 {
		order.Status = orderbookv1.StatusFilled
	} else {
		order.Status = orderbookv1.StatusCancelled
	}

	return &orderbookv1.Result{
		OrderID:  order.ID,
		Fills:    fills,
		Unfilled: order.Qty,
		Status:   order.Status,
	}, nil
}

// Cancel removes a resting order from its level and the registry. Unknown
// or already-terminal ids fail with ErrOrderNotFound.
func (ob *Orderbook) Cancel(orderID uint64) (*orderbookv1.Result, error) {
	ob.mu.Lock()
	defer ob.mu.Unlock()

	order, exists := ob.orders[orderID]
	if !exists {
		return nil, fmt.Errorf("%w: id %d", orderbookv1.ErrOrderNotFound, orderID)
	}

	if err := ob.removeResting(order); err != nil {
		return nil, err
	}
	order.Status = orderbookv1.StatusCancelled

	return &orderbookv1.Result{
		OrderID: order.ID,
		Status:  order.Status,
	}, nil
}

// Modify implements the priority state machine:
//
//   - same price and a quantity at or below the current remainder: in-place
//     reduction, queue position and sequence number untouched;
//   - anything else (price change or quantity increase): atomic cancel plus
//     resubmission under the same id with a fresh sequence number. The order
//     joins the tail of its (possibly new) level, and if it is now
//     aggressive it matches immediately exactly as a fresh limit would.
//
// No intermediate state between removal and reinsertion is observable.
func (ob *Orderbook) Modify(orderID uint64, newPrice float64, newQty int64) (*orderbookv1.Result, error) {
	if newPrice <= 0 {
		return nil, fmt.Errorf("%w: got %f", orderbookv1.ErrInvalidPrice, newPrice)
	}
	if newQty <= 0 {
		return nil, fmt.Errorf("%w: got %d", orderbookv1.ErrInvalidQty, newQty)
	}

	ob.mu.Lock()
	defer ob.mu.Unlock()

	order, exists := ob.orders[orderID]
	if !exists {
		return nil, fmt.Errorf("%w: id %d", orderbookv1.ErrOrderNotFound, orderID)
	}

	if newPrice == order.Price && newQty <= order.Qty {
		level, ok := ob.ladder(order.Side).Find(order.Price)
		if !ok {
			return nil, fmt.Errorf("%w: level %f missing for order %d", orderbookv1.ErrOrderNotFound, order.Price, orderID)
		}
		if err := level.Reduce(order, newQty); err != nil {
			return nil, err
		}

		return &orderbookv1.Result{
			OrderID: order.ID,
			Status:  order.Status,
		}, nil
	}

	// Priority loss: pull the order off its level, then resubmit under the
	// same id as a brand new arrival.
	if err := ob.removeResting(order); err != nil {
		return nil, err
	}

	order.Price = newPrice
	order.Qty = newQty
	order.OrigQty = newQty
	order.Sequence = ob.nextSeq()
	order.Status = orderbookv1.StatusResting

	fills := ob.match(order)
	ob.settle(order, fills)

	return &orderbookv1.Result{
		OrderID: order.ID,
		Fills:   fills,
		Status:  order.Status,
	}, nil
}

// BestBid returns the highest bid level as (price, aggregate quantity).
func (ob *Orderbook) BestBid() (orderbookv1.Quote, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return bestQuote(ob.bids)
}

// BestAsk returns the lowest ask level as (price, aggregate quantity).
func (ob *Orderbook) BestAsk() (orderbookv1.Quote, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return bestQuote(ob.asks)
}

// Midprice returns the bid/ask midpoint. It is explicitly unreported when
// either side is empty, never computed against a missing side.
func (ob *Orderbook) Midprice() (float64, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	bid, okBid := bestQuote(ob.bids)
	ask, okAsk := bestQuote(ob.asks)
	if !okBid || !okAsk {
		return 0, false
	}
	return (bid.Price + ask.Price) / 2, true
}

// Depth returns the top n levels per side, read from cached aggregates.
func (ob *Orderbook) Depth(n int) orderbookv1.Depth {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return orderbookv1.Depth{
		Bids: ob.bids.Depth(n),
		Asks: ob.asks.Depth(n),
	}
}

// OpenOrders returns the number of orders currently resting on the book.
func (ob *Orderbook) OpenOrders() int {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return len(ob.orders)
}

// BidVolume returns the total resting quantity on the bid side.
func (ob *Orderbook) BidVolume() int64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.bids.TotalVolume()
}

// AskVolume returns the total resting quantity on the ask side.
func (ob *Orderbook) AskVolume() int64 {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	return ob.asks.TotalVolume()
}

// Lookup returns the resting order with the given id, if any.
func (ob *Orderbook) Lookup(orderID uint64) (*orderbookv1.Order, bool) {
	ob.mu.RLock()
	defer ob.mu.RUnlock()

	order, exists := ob.orders[orderID]
	return order, exists
}

// nextID advances the order id counter.
func (ob *Orderbook) nextID() uint64 {
	ob.lastID++
	return ob.lastID
}

// nextSeq advances the global sequence counter shared by orders and fills.
func (ob *Orderbook) nextSeq() uint64 {
	ob.lastSeq++
	return ob.lastSeq
}

// ladder selects the ladder holding orders of the given side.
func (ob *Orderbook) ladder(side orderbookv1.Side) *orderbookv1.Ladder {
	if side == orderbookv1.SideBuy {
		return ob.bids
	}
	return ob.asks
}

// bestQuote reads a ladder's best level as a (price, aggregate quantity) quote.
func bestQuote(ladder *orderbookv1.Ladder) (orderbookv1.Quote, bool) {
	level, ok := ladder.Best()
	if !ok {
		return orderbookv1.Quote{}, false
	}
	return orderbookv1.Quote{Price: level.Price, Qty: level.TotalVolume}, true
}

// crosses reports whether a taker on the given side executes against a
// resting level at restingPrice. Market orders cross any level.
func crosses(taker *orderbookv1.Order, restingPrice float64) bool {
	if taker.Type == orderbookv1.OrderTypeMarket {
		return true
	}
	if taker.Side == orderbookv1.SideBuy {
		return restingPrice <= taker.Price
	}
	return restingPrice >= taker.Price
}

// match sweeps the opposite ladder best level first, consuming resting
// orders strictly in FIFO order within each level. Every fill is priced at
// the resting order's price. Fully consumed makers leave the queue and the
// registry; emptied levels leave the ladder.
func (ob *Orderbook) match(taker *orderbookv1.Order) []orderbookv1.Fill {
	opposite := ob.ladder(taker.Side.Opposite())

	var fills []orderbookv1.Fill
	for taker.Qty > 0 {
		level, ok := opposite.Best()
		if !ok || !crosses(taker, level.Price) {
			break
		}

		traded := taker.Qty
		if head := level.Head(); head.Qty < traded {
			traded = head.Qty
		}

		maker, done := level.ConsumeHead(traded)
		taker.Qty -= traded

		fills = append(fills, orderbookv1.Fill{
			MakerID:   maker.ID,
			TakerID:   taker.ID,
			Price:     level.Price,
			Qty:       traded,
			Sequence:  ob.nextSeq(),
			TakerSide: taker.Side,
		})

		if done {
			maker.Status = orderbookv1.StatusFilled
			delete(ob.orders, maker.ID)
			if level.IsEmpty() {
				opposite.RemoveLevel(level.Price)
			}
		} else {
			maker.Status = orderbookv1.StatusPartiallyFilled
		}
	}

	return fills
}

// settle rests a limit order's remainder after matching, or marks it filled.
func (ob *Orderbook) settle(order *orderbookv1.Order, fills []orderbookv1.Fill) {
	if order.Qty == 0 {
		order.Status = orderbookv1.StatusFilled
		return
	}

	level := ob.ladder(order.Side).GetOrCreate(order.Price)
	// Append never fails here: quantity was validated on entry.
	_ = level.Append(order)
	ob.orders[order.ID] = order

	if len(fills) > 0 {
		order.Status = orderbookv1.StatusPartiallyFilled
	} else {
		order.Status = orderbookv1.StatusResting
	}
}

// removeResting detaches an order from its level and the registry, dropping
// the level once emptied.
func (ob *Orderbook) removeResting(order *orderbookv1.Order) error {
	ladder := ob.ladder(order.Side)
	level, ok := ladder.Find(order.Price)
	if !ok {
		return fmt.Errorf("%w: level %f missing for order %d", orderbookv1.ErrOrderNotFound, order.Price, order.ID)
	}

	if err := level.Remove(order); err != nil {
		return err
	}
	if level.IsEmpty() {
		ladder.RemoveLevel(level.Price)
	}

	delete(ob.orders, order.ID)
	return nil
}
