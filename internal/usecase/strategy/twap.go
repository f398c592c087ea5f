package strategy

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
)

// TWAPExecutor works a parent quantity with market orders in even slices
// across a time window.
type TWAPExecutor struct {
	name string
	pf   *Portfolio

	side         orderbookv1.Side
	totalQty     int64
	start, end   int64
	tickInterval int64

	sent   int64
	lastAt int64
}

// NewTWAPExecutor creates a TWAP executor for the given parent order.
func NewTWAPExecutor(name string, side orderbookv1.Side, totalQty, start, end, tickInterval int64) *TWAPExecutor {
	return &TWAPExecutor{
		name:         name,
		pf:           &Portfolio{},
		side:         side,
		totalQty:     totalQty,
		start:        start,
		end:          end,
		tickInterval: tickInterval,
		lastAt:       -1 << 62,
	}
}

// Name implements simulatorv1.Strategy.
func (tw *TWAPExecutor) Name() string {
	return tw.name
}

// Portfolio exposes the strategy's account.
func (tw *TWAPExecutor) Portfolio() *Portfolio {
	return tw.pf
}

// Sent returns the child quantity submitted so far.
func (tw *TWAPExecutor) Sent() int64 {
	return tw.sent
}

// OnTick submits the next slice while inside the execution window.
func (tw *TWAPExecutor) OnTick(now int64, book simulatorv1.BookView) []simulatorv1.Action {
	if now < tw.start || now > tw.end {
		return nil
	}
	if now-tw.lastAt < tw.tickInterval {
		return nil
	}

	remaining := tw.totalQty - tw.sent
	if remaining <= 0 {
		return nil
	}

	// slices left in the window, inclusive of this one
	slicesLeft := (tw.end-now)/tw.tickInterval + 1
	if slicesLeft < 1 {
		slicesLeft = 1
	}
	qty := remaining / slicesLeft
	if qty < 1 {
		qty = 1
	}

	tw.sent += qty
	tw.lastAt = now

	return []simulatorv1.Action{
		{Time: now, Command: orderbookv1.NewMarketCommand(tw.side, qty)},
	}
}

// OnResult puts unfilled remainder back into the parent so later slices can
// retry it.
func (tw *TWAPExecutor) OnResult(cmd orderbookv1.Command, res *orderbookv1.Result) {
	if cmd.Type == orderbookv1.CommandNewMarket && res.Unfilled > 0 {
		tw.sent -= res.Unfilled
	}
}

// OnFill implements simulatorv1.Strategy.
func (tw *TWAPExecutor) OnFill(fill orderbookv1.Fill, side orderbookv1.Side) {
	tw.pf.OnFill(fill, side)
}

// MarkToMarket implements simulatorv1.Strategy.
func (tw *TWAPExecutor) MarkToMarket(book simulatorv1.BookView) (float64, bool) {
	return tw.pf.MarkToMarket(book)
}
