package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/quantsim/internal/curve"
	"github.com/san-kum/quantsim/internal/process"
	"github.com/san-kum/quantsim/internal/quant"
	"github.com/san-kum/quantsim/internal/quote"
)

const (
	DefaultDt      = 1.0 / 252.0
	DefaultHorizon = 1.0
	DefaultPaths   = 1000
	DefaultSpot    = 100.0
)

type Config struct {
	Model   string       `yaml:"model"`  // heston | blackscholes
	Scheme  string       `yaml:"scheme"` // euler
	Dt      float64      `yaml:"dt"`
	Horizon float64      `yaml:"horizon"`
	Paths   int          `yaml:"paths"`
	Seed    uint64       `yaml:"seed"`
	Market  MarketConfig `yaml:"market"`
	Heston  HestonConfig `yaml:"heston"`
}

type MarketConfig struct {
	Spot          float64 `yaml:"spot"`
	RiskFreeRate  float64 `yaml:"risk_free_rate"`
	DividendYield float64 `yaml:"dividend_yield"`
	Volatility    float64 `yaml:"volatility"` // blackscholes only
	DayCount      string  `yaml:"day_count"`
}

type HestonConfig struct {
	V0    float64 `yaml:"v0"`
	Kappa float64 `yaml:"kappa"`
	Theta float64 `yaml:"theta"`
	Sigma float64 `yaml:"sigma"`
	Rho   float64 `yaml:"rho"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:   "heston",
		Scheme:  "euler",
		Dt:      DefaultDt,
		Horizon: DefaultHorizon,
		Paths:   DefaultPaths,
		Market: MarketConfig{
			Spot:         DefaultSpot,
			RiskFreeRate: 0.03,
			Volatility:   0.2,
			DayCount:     string(curve.Actual365Fixed),
		},
		Heston: HestonConfig{
			V0:    0.04,
			Kappa: 1.0,
			Theta: 0.04,
			Sigma: 0.2,
			Rho:   -0.5,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SimConfig extracts the per-path simulation parameters.
func (c *Config) SimConfig() quant.Config {
	sim := quant.DefaultConfig()
	sim.Dt = c.Dt
	sim.Horizon = c.Horizon
	sim.Seed = c.Seed
	return sim
}

// BuildProcess constructs the configured process with flat curves
// anchored at reference. Every input sits behind its own relinkable
// handle, so the returned process can be repointed at live market data
// later without reconstruction.
func (c *Config) BuildProcess(reference time.Time) (quant.Process, error) {
	dc := curve.DayCounter(c.Market.DayCount)
	riskFree := curve.NewHandle(curve.NewFlatForward(reference, c.Market.RiskFreeRate, dc))
	dividend := curve.NewHandle(curve.NewFlatForward(reference, c.Market.DividendYield, dc))
	spot := quote.NewHandle(quote.NewSimpleQuote(c.Market.Spot))

	switch c.Model {
	case "heston":
		h := c.Heston
		return process.NewHeston(riskFree, dividend, spot, h.V0, h.Kappa, h.Theta, h.Sigma, h.Rho), nil
	case "blackscholes":
		return process.NewBlackScholes(riskFree, dividend, spot, c.Market.Volatility), nil
	default:
		return nil, fmt.Errorf("config: unknown model %q", c.Model)
	}
}
