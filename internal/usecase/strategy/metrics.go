package strategy

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
)

// ExecutionMetrics accumulates per-strategy execution quality counters over
// one simulation run.
type ExecutionMetrics struct {
	// MarketVolume is total executed volume across the whole market.
	MarketVolume int64
	// FilledQty is the strategy's own executed quantity, maker and taker.
	FilledQty int64
	BuyQty    int64
	SellQty   int64
}

// RecordMarketVolume adds the volume of every fill in the batch, whether or
// not the strategy participated.
func (m *ExecutionMetrics) RecordMarketVolume(fills []orderbookv1.Fill) {
	for _, f := range fills {
		m.MarketVolume += f.Qty
	}
}

// OnFill records one of the strategy's own executions; side is the side of
// the strategy's order.
func (m *ExecutionMetrics) OnFill(fill orderbookv1.Fill, side orderbookv1.Side) {
	m.FilledQty += fill.Qty
	if side == orderbookv1.SideBuy {
		m.BuyQty += fill.Qty
	} else {
		m.SellQty += fill.Qty
	}
}

// ParticipationRate is the strategy's share of total market volume.
func (m *ExecutionMetrics) ParticipationRate() float64 {
	if m.MarketVolume == 0 {
		return 0
	}
	return float64(m.FilledQty) / float64(m.MarketVolume)
}
