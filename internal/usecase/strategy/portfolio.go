// Package strategy hosts the trading agents the simulator can run against
// the matching engine, plus the portfolio and execution accounting they
// share. Everything here consumes the book's command surface and fills;
// nothing touches ladder internals.
package strategy

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
)

// Portfolio is a single-asset account: cash in quote currency, position in
// base units, realized PnL via average cost.
type Portfolio struct {
	Cash        float64
	Position    int64
	AvgCost     float64
	RealizedPnL float64

	// FeePerUnit is an optional flat fee charged on every executed unit.
	FeePerUnit float64
}

// OnFill updates the account for one fill of ours; side is the side of OUR
// order in the fill, whether we were maker or taker.
func (p *Portfolio) OnFill(fill orderbookv1.Fill, side orderbookv1.Side) {
	qty := fill.Qty
	px := fill.Price
	fee := p.FeePerUnit * float64(qty)

	if side == orderbookv1.SideBuy {
		p.Cash -= px * float64(qty)
		p.Cash -= fee

		newPos := p.Position + qty
		switch {
		case p.Position == 0:
			p.AvgCost = px
		case p.Position > 0:
			// add to long
			p.AvgCost = (p.AvgCost*float64(p.Position) + px*float64(qty)) / float64(newPos)
		default:
			// covering short realizes pnl on the covered amount
			cover := qty
			if -p.Position < cover {
				cover = -p.Position
			}
			p.RealizedPnL += (p.AvgCost - px) * float64(cover)
			if newPos > 0 {
				p.AvgCost = px
			}
		}
		p.Position = newPos
		return
	}

	p.Cash += px * float64(qty)
	p.Cash -= fee

	newPos := p.Position - qty
	switch {
	case p.Position == 0:
		p.AvgCost = px
	case p.Position < 0:
		// add to short
		p.AvgCost = (p.AvgCost*float64(-p.Position) + px*float64(qty)) / float64(-newPos)
	default:
		// selling long realizes pnl on the sold amount
		sold := qty
		if p.Position < sold {
			sold = p.Position
		}
		p.RealizedPnL += (px - p.AvgCost) * float64(sold)
		if newPos < 0 {
			p.AvgCost = px
		}
	}
	p.Position = newPos
}

// MarkToMarket values the position against the current midprice. It is
// unreported when the book has no mid.
func (p *Portfolio) MarkToMarket(book simulatorv1.BookView) (float64, bool) {
	mid, ok := book.Midprice()
	if !ok {
		return 0, false
	}

	var unrealized float64
	switch {
	case p.Position > 0:
		unrealized = (mid - p.AvgCost) * float64(p.Position)
	case p.Position < 0:
		unrealized = (p.AvgCost - mid) * float64(-p.Position)
	}

	return p.RealizedPnL + unrealized, true
}
