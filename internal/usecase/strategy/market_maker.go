package strategy

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
)

// MarketMakerConfig configures the symmetric quoter.
type MarketMakerConfig struct {
	TickSize           float64
	HalfSpreadTicks    int64
	Size               int64
	TickInterval       int64
	InventorySkewTicks int64
}

// DefaultMarketMakerConfig returns the baseline quoting parameters.
func DefaultMarketMakerConfig() MarketMakerConfig {
	return MarketMakerConfig{
		TickSize:           1.0,
		HalfSpreadTicks:    1,
		Size:               5,
		TickInterval:       10,
		InventorySkewTicks: 2,
	}
}

// MarketMaker keeps one bid and one ask around the mid, cancel/replacing
// both quotes every TickInterval. If inventory builds up it shifts both
// quotes to encourage the flattening side.
type MarketMaker struct {
	name string
	cfg  MarketMakerConfig
	pf   *Portfolio

	lastQuoteAt int64
	bidID       uint64 // 0 when no quote resting
	askID       uint64
}

// NewMarketMaker creates a market maker with the given quoting config.
func NewMarketMaker(name string, cfg MarketMakerConfig) *MarketMaker {
	return &MarketMaker{
		name:        name,
		cfg:         cfg,
		pf:          &Portfolio{},
		lastQuoteAt: -1 << 62,
	}
}

// Name implements simulatorv1.Strategy.
func (mm *MarketMaker) Name() string {
	return mm.name
}

// Portfolio exposes the strategy's account.
func (mm *MarketMaker) Portfolio() *Portfolio {
	return mm.pf
}

// OnTick refreshes both quotes when the interval has elapsed and the book
// has a mid to quote around.
func (mm *MarketMaker) OnTick(now int64, book simulatorv1.BookView) []simulatorv1.Action {
	if now-mm.lastQuoteAt < mm.cfg.TickInterval {
		return nil
	}

	mid, ok := book.Midprice()
	if !ok {
		return nil
	}

	// Long inventory quotes lower to encourage sells, short quotes higher.
	var skew int64
	if mm.pf.Position > 0 {
		skew = -mm.cfg.InventorySkewTicks
	} else if mm.pf.Position < 0 {
		skew = mm.cfg.InventorySkewTicks
	}

	bidPx := mid - float64(mm.cfg.HalfSpreadTicks-skew)*mm.cfg.TickSize
	askPx := mid + float64(mm.cfg.HalfSpreadTicks+skew)*mm.cfg.TickSize

	var actions []simulatorv1.Action
	if mm.bidID != 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.CancelCommand(mm.bidID)})
	}
	if mm.askID != 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.CancelCommand(mm.askID)})
	}
	if bidPx > 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.NewLimitCommand(orderbookv1.SideBuy, bidPx, mm.cfg.Size)})
	}
	if askPx > 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.NewLimitCommand(orderbookv1.SideSell, askPx, mm.cfg.Size)})
	}

	mm.lastQuoteAt = now
	return actions
}

// OnResult tracks which of our quotes is resting under which book id.
func (mm *MarketMaker) OnResult(cmd orderbookv1.Command, res *orderbookv1.Result) {
	switch cmd.Type {
	case orderbookv1.CommandCancel:
		if cmd.OrderID == mm.bidID {
			mm.bidID = 0
		}
		if cmd.OrderID == mm.askID {
			mm.askID = 0
		}
	case orderbookv1.CommandNewLimit:
		resting := res.Status == orderbookv1.StatusResting || res.Status == orderbookv1.StatusPartiallyFilled
		if cmd.Side == orderbookv1.SideBuy {
			mm.bidID = 0
			if resting {
				mm.bidID = res.OrderID
			}
		} else {
			mm.askID = 0
			if resting {
				mm.askID = res.OrderID
			}
		}
	}
}

// OnFill implements simulatorv1.Strategy. Quote ids are left in place even
// when a fill consumes the quote: cancelling an already-gone id is a no-op
// the simulator tolerates, and ids are never reused.
func (mm *MarketMaker) OnFill(fill orderbookv1.Fill, side orderbookv1.Side) {
	mm.pf.OnFill(fill, side)
}

// MarkToMarket implements simulatorv1.Strategy.
func (mm *MarketMaker) MarkToMarket(book simulatorv1.BookView) (float64, bool) {
	return mm.pf.MarkToMarket(book)
}
