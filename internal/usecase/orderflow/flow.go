// Package orderflow generates synthetic ambient order flow for the
// simulator. Generation is driven by an explicitly seeded source, so a seed
// fully determines the command stream.
package orderflow

import (
	"math/rand"

	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
)

// Config holds the flow parameters.
type Config struct {
	Seed int64 `env:"SEED" envDefault:"7"`

	// IntensityPer100 is the average number of orders per 100 time steps.
	IntensityPer100 float64 `env:"INTENSITY_PER_100" envDefault:"20"`

	MinQty int64 `env:"MIN_QTY" envDefault:"1"`
	MaxQty int64 `env:"MAX_QTY" envDefault:"10"`

	// Limit prices land 1..MaxTicksAway ticks away from the reference mid.
	Tick         float64 `env:"TICK" envDefault:"1"`
	MaxTicksAway int     `env:"MAX_TICKS_AWAY" envDefault:"5"`

	// PMarket is the probability an order is a market order.
	PMarket float64 `env:"P_MARKET" envDefault:"0.05"`
}

// Scheduled is a command stamped with its arrival time.
type Scheduled struct {
	Time    int64
	Command orderbookv1.Command
}

// Flow is a discrete-time Poisson-like generator: each time step produces
// zero or one order with probability proportional to the intensity.
type Flow struct {
	cfg Config
	rng *rand.Rand
}

// New creates a flow generator seeded from the config.
func New(cfg Config) *Flow {
	return &Flow{
		cfg: cfg,
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Commands generates the ambient flow for [start, end] around refMid.
func (f *Flow) Commands(start, end int64, refMid float64) []Scheduled {
	p := f.cfg.IntensityPer100 / 100.0
	if p > 1 {
		p = 1
	}

	var out []Scheduled
	for t := start; t <= end; t++ {
		if f.rng.Float64() > p {
			continue
		}

		side := orderbookv1.SideBuy
		if f.rng.Float64() >= 0.5 {
			side = orderbookv1.SideSell
		}

		qty := f.cfg.MinQty + f.rng.Int63n(f.cfg.MaxQty-f.cfg.MinQty+1)

		if f.rng.Float64() < f.cfg.PMarket {
			out = append(out, Scheduled{Time: t, Command: orderbookv1.NewMarketCommand(side, qty)})
			continue
		}

		ticks := 1 + f.rng.Intn(f.cfg.MaxTicksAway)
		price := refMid + float64(ticks)*f.cfg.Tick
		if side == orderbookv1.SideBuy {
			price = refMid - float64(ticks)*f.cfg.Tick
		}

		out = append(out, Scheduled{Time: t, Command: orderbookv1.NewLimitCommand(side, price, qty)})
	}

	return out
}
