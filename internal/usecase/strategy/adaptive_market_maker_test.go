package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1_mock "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1/mock"
)

// balancedBook reports the given mid and a flat depth, so the imbalance
// lean stays at zero.
func balancedBook(ctrl *gomock.Controller, mid float64) *simulatorv1_mock.MockBookView {
	book := simulatorv1_mock.NewMockBookView(ctrl)
	book.EXPECT().Midprice().Return(mid, true).AnyTimes()
	book.EXPECT().Depth(gomock.Any()).Return(orderbookv1.Depth{
		Bids: []orderbookv1.Quote{{Price: mid - 1, Qty: 10}},
		Asks: []orderbookv1.Quote{{Price: mid + 1, Qty: 10}},
	}).AnyTimes()
	return book
}

func TestAdaptiveMarketMaker_BaselineQuotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewAdaptiveMarketMaker("amm", DefaultAdaptiveMarketMakerConfig())

	actions := a.OnTick(0, balancedBook(ctrl, 100))
	require.Len(t, actions, 2)

	// 1. Flat inventory, no history: base half spread either side.
	assert.Equal(t, 99.0, actions[0].Command.Price)
	assert.Equal(t, 101.0, actions[1].Command.Price)
}

func TestAdaptiveMarketMaker_VolatilityWidensSpread(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewAdaptiveMarketMaker("amm", DefaultAdaptiveMarketMakerConfig())

	// Feed a choppy mid path, one tick per interval.
	mids := []float64{100, 104, 98, 105, 99}
	var actions []struct {
		bid, ask float64
	}
	for i, mid := range mids {
		acts := a.OnTick(int64(i*10), balancedBook(ctrl, mid))
		var bid, ask float64
		for _, act := range acts {
			if act.Command.Type != orderbookv1.CommandNewLimit {
				continue
			}
			if act.Command.Side == orderbookv1.SideBuy {
				bid = act.Command.Price
			} else {
				ask = act.Command.Price
			}
		}
		actions = append(actions, struct{ bid, ask float64 }{bid, ask})
	}

	// 1. The quoted spread is wider after the choppy stretch than at the
	// calm start.
	first := actions[0].ask - actions[0].bid
	last := actions[len(actions)-1].ask - actions[len(actions)-1].bid
	assert.Greater(t, last, first)
}

func TestAdaptiveMarketMaker_InventoryGuard(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := DefaultAdaptiveMarketMakerConfig()
	cfg.InvLimit = 10
	a := NewAdaptiveMarketMaker("amm", cfg)

	// Push the position past the limit.
	a.OnFill(orderbookv1.Fill{Price: 100, Qty: 12}, orderbookv1.SideBuy)

	actions := a.OnTick(0, balancedBook(ctrl, 100))

	// 1. Only the ask is quoted while long past the limit.
	require.Len(t, actions, 1)
	assert.Equal(t, orderbookv1.SideSell, actions[0].Command.Side)
}

func TestAdaptiveMarketMaker_TracksRestingIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := NewAdaptiveMarketMaker("amm", DefaultAdaptiveMarketMakerConfig())

	actions := a.OnTick(0, balancedBook(ctrl, 100))
	require.Len(t, actions, 2)
	a.OnResult(actions[0].Command, &orderbookv1.Result{OrderID: 7, Status: orderbookv1.StatusResting})
	a.OnResult(actions[1].Command, &orderbookv1.Result{OrderID: 8, Status: orderbookv1.StatusResting})

	// 1. Next cycle cancels both tracked quotes first.
	actions = a.OnTick(10, balancedBook(ctrl, 100))
	require.GreaterOrEqual(t, len(actions), 2)
	assert.Equal(t, orderbookv1.CommandCancel, actions[0].Command.Type)
	assert.Equal(t, uint64(7), actions[0].Command.OrderID)
	assert.Equal(t, uint64(8), actions[1].Command.OrderID)
}
