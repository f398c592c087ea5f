package simulatorv1

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
)

// BookView is the read-only query surface strategies see. The matching
// engine's Orderbook satisfies it; strategies never mutate the book
// directly, only through scheduled Actions.
type BookView interface {
	BestBid() (orderbookv1.Quote, bool)
	BestAsk() (orderbookv1.Quote, bool)
	Midprice() (float64, bool)
	Depth(levels int) orderbookv1.Depth
}

// Strategy is a trading agent hosted by the simulator.
//
//go:generate mockgen -source strategy.go -destination=mock/strategy_mock.go -package=simulatorv1_mock
type Strategy interface {
	// Name identifies the strategy in results and metrics.
	Name() string

	// OnTick is called on every snapshot event; returned actions are
	// scheduled onto the event queue.
	OnTick(now int64, book BookView) []Action

	// OnResult is called with the outcome of every command this strategy
	// issued, in application order. Strategies learn their resting order
	// ids here.
	OnResult(cmd orderbookv1.Command, res *orderbookv1.Result)

	// OnFill is called for every fill involving one of this strategy's
	// orders; side is the side of the strategy's own order in the fill.
	OnFill(fill orderbookv1.Fill, side orderbookv1.Side)

	// MarkToMarket values the strategy's holdings against the current
	// midprice. Unreported when the mid is undefined.
	MarkToMarket(book BookView) (float64, bool)
}
