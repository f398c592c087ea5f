package strategy

import (
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
	"github.com/muhammadchandra19/microbook/internal/usecase/analytics"
)

// AdaptiveMarketMakerConfig configures the adaptive quoter.
type AdaptiveMarketMakerConfig struct {
	TickSize            float64
	BaseHalfSpreadTicks int64
	Size                int64
	TickInterval        int64

	// Inventory control.
	InvTarget int64
	InvLimit  int64
	InvK      float64 // how aggressively quotes skew with inventory error

	// Volatility control over recent mid changes.
	VolWindow int
	VolK      float64 // spread widening per unit of mid volatility

	// Depth-imbalance leaning.
	ImbLevels int
	ImbK      float64
}

// DefaultAdaptiveMarketMakerConfig returns the baseline adaptive parameters.
func DefaultAdaptiveMarketMakerConfig() AdaptiveMarketMakerConfig {
	return AdaptiveMarketMakerConfig{
		TickSize:            1.0,
		BaseHalfSpreadTicks: 1,
		Size:                5,
		TickInterval:        10,
		InvTarget:           0,
		InvLimit:            25,
		InvK:                0.08,
		VolWindow:           30,
		VolK:                3.0,
		ImbLevels:           3,
		ImbK:                2.0,
	}
}

// AdaptiveMarketMaker widens its spread with volatility, skews quotes
// toward flattening inventory and leans on book imbalance. Past the
// inventory limit it stops quoting the accumulating side altogether.
type AdaptiveMarketMaker struct {
	name string
	cfg  AdaptiveMarketMakerConfig
	pf   *Portfolio

	lastQuoteAt int64
	bidID       uint64
	askID       uint64

	midHist []float64
}

// NewAdaptiveMarketMaker creates an adaptive market maker.
func NewAdaptiveMarketMaker(name string, cfg AdaptiveMarketMakerConfig) *AdaptiveMarketMaker {
	return &AdaptiveMarketMaker{
		name:        name,
		cfg:         cfg,
		pf:          &Portfolio{},
		lastQuoteAt: -1 << 62,
	}
}

// Name implements simulatorv1.Strategy.
func (a *AdaptiveMarketMaker) Name() string {
	return a.name
}

// Portfolio exposes the strategy's account.
func (a *AdaptiveMarketMaker) Portfolio() *Portfolio {
	return a.pf
}

// recordMid pushes the current mid into the rolling window.
func (a *AdaptiveMarketMaker) recordMid(book simulatorv1.BookView) (float64, bool) {
	mid, ok := book.Midprice()
	if !ok {
		return 0, false
	}
	a.midHist = append(a.midHist, mid)
	if len(a.midHist) > a.cfg.VolWindow {
		a.midHist = a.midHist[1:]
	}
	return mid, true
}

// volProxy is the mean absolute mid change over the window.
func (a *AdaptiveMarketMaker) volProxy() float64 {
	if len(a.midHist) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(a.midHist); i++ {
		d := a.midHist[i] - a.midHist[i-1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum / float64(len(a.midHist)-1)
}

// OnTick implements simulatorv1.Strategy.
func (a *AdaptiveMarketMaker) OnTick(now int64, book simulatorv1.BookView) []simulatorv1.Action {
	if now-a.lastQuoteAt < a.cfg.TickInterval {
		return nil
	}

	mid, ok := a.recordMid(book)
	if !ok {
		return nil
	}

	// Dynamic half spread in ticks.
	halfSpread := a.cfg.BaseHalfSpreadTicks + int64(a.cfg.VolK*a.volProxy()/a.cfg.TickSize)

	// Inventory skew in ticks, clamped.
	invErr := a.pf.Position - a.cfg.InvTarget
	invSkew := int64(a.cfg.InvK * float64(invErr))
	clamp := a.cfg.BaseHalfSpreadTicks + 5
	if invSkew > clamp {
		invSkew = clamp
	}
	if invSkew < -clamp {
		invSkew = -clamp
	}

	// Imbalance leaning.
	var imbSkew int64
	if im, ok := analytics.Imbalance(book, a.cfg.ImbLevels); ok {
		imbSkew = int64(a.cfg.ImbK * im)
	}

	// Positive skew backs both quotes further off the mid; the inventory
	// guard below does the hard flattening.
	totalSkew := invSkew + imbSkew
	bidPx := mid - float64(halfSpread+totalSkew)*a.cfg.TickSize
	askPx := mid + float64(halfSpread+totalSkew)*a.cfg.TickSize

	quoteBid := a.pf.Position < a.cfg.InvLimit
	quoteAsk := a.pf.Position > -a.cfg.InvLimit

	var actions []simulatorv1.Action
	if a.bidID != 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.CancelCommand(a.bidID)})
	}
	if a.askID != 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.CancelCommand(a.askID)})
	}
	if quoteBid && bidPx > 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.NewLimitCommand(orderbookv1.SideBuy, bidPx, a.cfg.Size)})
	}
	if quoteAsk && askPx > 0 {
		actions = append(actions, simulatorv1.Action{Time: now, Command: orderbookv1.NewLimitCommand(orderbookv1.SideSell, askPx, a.cfg.Size)})
	}

	a.lastQuoteAt = now
	return actions
}

// OnResult implements simulatorv1.Strategy.
func (a *AdaptiveMarketMaker) OnResult(cmd orderbookv1.Command, res *orderbookv1.Result) {
	switch cmd.Type {
	case orderbookv1.CommandCancel:
		if cmd.OrderID == a.bidID {
			a.bidID = 0
		}
		if cmd.OrderID == a.askID {
			a.askID = 0
		}
	case orderbookv1.CommandNewLimit:
		resting := res.Status == orderbookv1.StatusResting || res.Status == orderbookv1.StatusPartiallyFilled
		if cmd.Side == orderbookv1.SideBuy {
			a.bidID = 0
			if resting {
				a.bidID = res.OrderID
			}
		} else {
			a.askID = 0
			if resting {
				a.askID = res.OrderID
			}
		}
	}
}

// OnFill implements simulatorv1.Strategy.
func (a *AdaptiveMarketMaker) OnFill(fill orderbookv1.Fill, side orderbookv1.Side) {
	a.pf.OnFill(fill, side)
}

// MarkToMarket implements simulatorv1.Strategy.
func (a *AdaptiveMarketMaker) MarkToMarket(book simulatorv1.BookView) (float64, bool) {
	return a.pf.MarkToMarket(book)
}
