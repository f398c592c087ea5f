package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/muhammadchandra19/microbook/internal/usecase/orderflow"
)

// Config represents the application configuration.
type Config struct {
	App  AppConfig         `envPrefix:"APP_"`
	Sim  SimConfig         `envPrefix:"SIM_"`
	Flow orderflow.Config  `envPrefix:"FLOW_"`
	MM   MarketMakerConfig `envPrefix:"MM_"`
	TWAP TWAPConfig        `envPrefix:"TWAP_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"microbook"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// SimConfig represents the simulation run parameters.
type SimConfig struct {
	Horizon          int64   `env:"HORIZON" envDefault:"1000"`
	SnapshotInterval int64   `env:"SNAPSHOT_INTERVAL" envDefault:"10"`
	DepthLevels      int     `env:"DEPTH_LEVELS" envDefault:"5"`
	RefMid           float64 `env:"REF_MID" envDefault:"100"`

	// Initial resting liquidity seeded around RefMid before the run.
	SeedQty   int64   `env:"SEED_QTY" envDefault:"50"`
	SeedTicks float64 `env:"SEED_TICKS" envDefault:"1"`
}

// MarketMakerConfig represents the hosted market maker parameters.
type MarketMakerConfig struct {
	Enabled         bool    `env:"ENABLED" envDefault:"true"`
	Adaptive        bool    `env:"ADAPTIVE" envDefault:"false"`
	TickSize        float64 `env:"TICK_SIZE" envDefault:"1"`
	HalfSpreadTicks int64   `env:"HALF_SPREAD_TICKS" envDefault:"1"`
	Size            int64   `env:"SIZE" envDefault:"5"`
	TickInterval    int64   `env:"TICK_INTERVAL" envDefault:"10"`
	SkewTicks       int64   `env:"SKEW_TICKS" envDefault:"2"`
}

// TWAPConfig represents the hosted TWAP executor parameters.
type TWAPConfig struct {
	Enabled      bool   `env:"ENABLED" envDefault:"false"`
	Side         string `env:"SIDE" envDefault:"buy"`
	TotalQty     int64  `env:"TOTAL_QTY" envDefault:"100"`
	Start        int64  `env:"START" envDefault:"100"`
	End          int64  `env:"END" envDefault:"900"`
	TickInterval int64  `env:"TICK_INTERVAL" envDefault:"50"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	return cfg, nil
}
