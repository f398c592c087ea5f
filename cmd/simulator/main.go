package main

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	app "github.com/muhammadchandra19/microbook/internal/app/simulator"
	orderbookv1 "github.com/muhammadchandra19/microbook/internal/domain/orderbook/v1"
	simulatorv1 "github.com/muhammadchandra19/microbook/internal/domain/simulator/v1"
	"github.com/muhammadchandra19/microbook/internal/usecase/orderbook"
	"github.com/muhammadchandra19/microbook/internal/usecase/orderflow"
	"github.com/muhammadchandra19/microbook/internal/usecase/strategy"
	"github.com/muhammadchandra19/microbook/pkg/config"
	"github.com/muhammadchandra19/microbook/pkg/logger"
)

var cfg *config.Config
var log *logger.Logger

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		panic(err)
	}

	log, err = logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		panic(err)
	}
}

func main() {
	defer log.Sync()

	runID := ulid.Make().String()
	log.Info("starting simulation",
		logger.Field{Key: "run_id", Value: runID},
		logger.Field{Key: "horizon", Value: cfg.Sim.Horizon},
		logger.Field{Key: "seed", Value: cfg.Flow.Seed},
	)

	book := orderbook.NewOrderbook()
	strategies := buildStrategies()

	sim := app.NewSimulator(book, strategies, log, &app.Options{
		SnapshotInterval: cfg.Sim.SnapshotInterval,
		DepthLevels:      cfg.Sim.DepthLevels,
	})

	seedBook(sim)

	flow := orderflow.New(cfg.Flow)
	sim.ScheduleFlow(flow.Commands(1, cfg.Sim.Horizon, cfg.Sim.RefMid))
	sim.ScheduleSnapshots(0, cfg.Sim.Horizon)

	res := sim.Run(cfg.Sim.Horizon)

	report(res, book)
}

// buildStrategies assembles the hosted strategies from config.
func buildStrategies() []simulatorv1.Strategy {
	var strategies []simulatorv1.Strategy

	if cfg.MM.Enabled {
		if cfg.MM.Adaptive {
			amCfg := strategy.DefaultAdaptiveMarketMakerConfig()
			amCfg.TickSize = cfg.MM.TickSize
			amCfg.BaseHalfSpreadTicks = cfg.MM.HalfSpreadTicks
			amCfg.Size = cfg.MM.Size
			amCfg.TickInterval = cfg.MM.TickInterval
			strategies = append(strategies, strategy.NewAdaptiveMarketMaker("adaptive-mm", amCfg))
		} else {
			mmCfg := strategy.MarketMakerConfig{
				TickSize:           cfg.MM.TickSize,
				HalfSpreadTicks:    cfg.MM.HalfSpreadTicks,
				Size:               cfg.MM.Size,
				TickInterval:       cfg.MM.TickInterval,
				InventorySkewTicks: cfg.MM.SkewTicks,
			}
			strategies = append(strategies, strategy.NewMarketMaker("mm", mmCfg))
		}
	}

	if cfg.TWAP.Enabled {
		side := orderbookv1.Side(cfg.TWAP.Side)
		if !side.Valid() {
			side = orderbookv1.SideBuy
		}
		strategies = append(strategies, strategy.NewTWAPExecutor(
			"twap", side, cfg.TWAP.TotalQty, cfg.TWAP.Start, cfg.TWAP.End, cfg.TWAP.TickInterval,
		))
	}

	return strategies
}

// seedBook rests initial liquidity either side of the reference mid so the
// market opens with a defined top of book.
func seedBook(sim *app.Simulator) {
	bid := cfg.Sim.RefMid - cfg.Sim.SeedTicks
	ask := cfg.Sim.RefMid + cfg.Sim.SeedTicks
	sim.ScheduleCommand(0, orderbookv1.NewLimitCommand(orderbookv1.SideBuy, bid, cfg.Sim.SeedQty))
	sim.ScheduleCommand(0, orderbookv1.NewLimitCommand(orderbookv1.SideSell, ask, cfg.Sim.SeedQty))
}

func report(res *app.Result, book *orderbook.Orderbook) {
	fields := []logger.Field{
		{Key: "fills", Value: len(res.Fills)},
		{Key: "snapshots", Value: len(res.Snapshots)},
		{Key: "open_orders", Value: book.OpenOrders()},
	}
	if bid, ok := book.BestBid(); ok {
		fields = append(fields, logger.Field{Key: "best_bid", Value: fmt.Sprintf("%.2fx%d", bid.Price, bid.Qty)})
	}
	if ask, ok := book.BestAsk(); ok {
		fields = append(fields, logger.Field{Key: "best_ask", Value: fmt.Sprintf("%.2fx%d", ask.Price, ask.Qty)})
	}
	log.Info("simulation finished", fields...)

	for name, series := range res.PnL {
		var final float64
		if len(series) > 0 {
			final = series[len(series)-1]
		}
		m := res.Metrics[name]
		log.Info("strategy summary",
			logger.Field{Key: "strategy", Value: name},
			logger.Field{Key: "pnl", Value: final},
			logger.Field{Key: "filled_qty", Value: m.FilledQty},
			logger.Field{Key: "participation", Value: m.ParticipationRate()},
		)
	}
}
