package config

var Presets = map[string]map[string]*Config{
	"heston": {
		"calm": {
			Model: "heston", Scheme: "euler", Dt: DefaultDt, Horizon: 1.0, Paths: 1000,
			Market: MarketConfig{Spot: 100, RiskFreeRate: 0.03, DayCount: "ACT/365F"},
			Heston: HestonConfig{V0: 0.04, Kappa: 1.0, Theta: 0.04, Sigma: 0.2, Rho: -0.5},
		},
		"stressed": {
			Model: "heston", Scheme: "euler", Dt: DefaultDt, Horizon: 1.0, Paths: 1000,
			Market: MarketConfig{Spot: 100, RiskFreeRate: 0.03, DayCount: "ACT/365F"},
			Heston: HestonConfig{V0: 0.09, Kappa: 2.0, Theta: 0.09, Sigma: 0.8, Rho: -0.8},
		},
		"meanreverting": {
			Model: "heston", Scheme: "euler", Dt: DefaultDt, Horizon: 2.0, Paths: 1000,
			Market: MarketConfig{Spot: 100, RiskFreeRate: 0.03, DayCount: "ACT/365F"},
			Heston: HestonConfig{V0: 0.16, Kappa: 5.0, Theta: 0.04, Sigma: 0.3, Rho: -0.3},
		},
	},
	"blackscholes": {
		"lowvol": {
			Model: "blackscholes", Scheme: "euler", Dt: DefaultDt, Horizon: 1.0, Paths: 1000,
			Market: MarketConfig{Spot: 100, RiskFreeRate: 0.03, Volatility: 0.1, DayCount: "ACT/365F"},
		},
		"highvol": {
			Model: "blackscholes", Scheme: "euler", Dt: DefaultDt, Horizon: 1.0, Paths: 1000,
			Market: MarketConfig{Spot: 100, RiskFreeRate: 0.03, Volatility: 0.4, DayCount: "ACT/365F"},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
