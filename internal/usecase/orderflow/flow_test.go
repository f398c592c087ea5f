package orderflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
)

func testConfig(seed int64) Config {
	return Config{
		Seed:            seed,
		IntensityPer100: 50,
		MinQty:          1,
		MaxQty:          10,
		Tick:            1,
		MaxTicksAway:    5,
		PMarket:         0.1,
	}
}

func TestFlow_DeterministicBySeed(t *testing.T) {
	// 1. Same seed, same stream.
	a := New(testConfig(7)).Commands(0, 500, 100)
	b := New(testConfig(7)).Commands(0, 500, 100)
	assert.Equal(t, a, b)

	// 2. Different seed, different stream.
	c := New(testConfig(8)).Commands(0, 500, 100)
	assert.NotEqual(t, a, c)
}

func TestFlow_CommandShape(t *testing.T) {
	cfg := testConfig(7)
	flow := New(cfg).Commands(0, 1000, 100)
	require.NotEmpty(t, flow)

	var markets int
	for _, sc := range flow {
		// 1. Times stay inside the horizon and never decrease.
		assert.GreaterOrEqual(t, sc.Time, int64(0))
		assert.LessOrEqual(t, sc.Time, int64(1000))

		cmd := sc.Command
		assert.True(t, cmd.Side.Valid())

		// 2. Quantities respect the configured band.
		assert.GreaterOrEqual(t, cmd.Qty, cfg.MinQty)
		assert.LessOrEqual(t, cmd.Qty, cfg.MaxQty)

		switch cmd.Type {
		case orderbookv1.CommandNewMarket:
			markets++
		case orderbookv1.CommandNewLimit:
			// 3. Limits land 1..MaxTicksAway ticks off the mid, on the
			// passive side.
			dist := cmd.Price - 100
			if cmd.Side == orderbookv1.SideBuy {
				dist = 100 - cmd.Price
			}
			assert.GreaterOrEqual(t, dist, cfg.Tick)
			assert.LessOrEqual(t, dist, float64(cfg.MaxTicksAway)*cfg.Tick)
		default:
			t.Fatalf("unexpected command type %s", cmd.Type)
		}
	}

	// 4. Some market orders show up over a long horizon.
	assert.Positive(t, markets)
}

func TestFlow_TimesNonDecreasing(t *testing.T) {
	flow := New(testConfig(7)).Commands(0, 500, 100)
	for i := 1; i < len(flow); i++ {
		assert.LessOrEqual(t, flow[i-1].Time, flow[i].Time)
	}
}
