package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/quantsim/internal/config"
	"github.com/san-kum/quantsim/internal/discretize"
	"github.com/san-kum/quantsim/internal/export"
	"github.com/san-kum/quantsim/internal/mc"
	"github.com/san-kum/quantsim/internal/quant"
	"github.com/san-kum/quantsim/internal/stats"
	"github.com/san-kum/quantsim/internal/tui"
)

var (
	configFile string
	preset     string
	model      string
	paths      int
	dt         float64
	horizon    float64
	seed       uint64
	plot       bool
	jsonOut    string
	csvOut     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "quantsim",
		Short: "Monte-Carlo simulation of stochastic volatility processes",
	}

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a path ensemble and report terminal statistics",
		RunE:  runSimulate,
	}
	simulateCmd.Flags().StringVarP(&configFile, "config", "c", "", "yaml config file")
	simulateCmd.Flags().StringVar(&preset, "preset", "", "named preset, e.g. calm")
	simulateCmd.Flags().StringVarP(&model, "model", "m", "", "process model (heston, blackscholes)")
	simulateCmd.Flags().IntVarP(&paths, "paths", "n", 0, "number of paths")
	simulateCmd.Flags().Float64Var(&dt, "dt", 0, "time step in years")
	simulateCmd.Flags().Float64Var(&horizon, "horizon", 0, "horizon in years")
	simulateCmd.Flags().Uint64Var(&seed, "seed", 0, "base RNG seed")
	simulateCmd.Flags().BoolVar(&plot, "plot", false, "plot a sample path")
	simulateCmd.Flags().StringVar(&jsonOut, "json", "", "write run summary JSON to file")
	simulateCmd.Flags().StringVar(&csvOut, "csv", "", "write sample path CSV to file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "Watch a single path evolve in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVarP(&configFile, "config", "c", "", "yaml config file")
	liveCmd.Flags().StringVar(&preset, "preset", "", "named preset, e.g. calm")
	liveCmd.Flags().StringVarP(&model, "model", "m", "", "process model (heston, blackscholes)")
	liveCmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in presets",
		Run:   runPresets,
	}

	rootCmd.AddCommand(simulateCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if model != "" {
		cfg.Model = model
	}
	if preset != "" {
		p := config.GetPreset(cfg.Model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q for model %q", preset, cfg.Model)
		}
		cfg = p
	}

	if paths > 0 {
		cfg.Paths = paths
	}
	if dt > 0 {
		cfg.Dt = dt
	}
	if horizon > 0 {
		cfg.Horizon = horizon
	}
	if seed > 0 {
		cfg.Seed = seed
	}
	return cfg, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	proc, err := cfg.BuildProcess(time.Now().UTC())
	if err != nil {
		return err
	}

	scheme := discretize.NewEuler()
	simCfg := cfg.SimConfig()
	simCfg.RecordPath = false

	ens := mc.NewEnsemble(proc, scheme, cfg.Paths, cfg.Seed)
	ens.SetMetricFactory(func() []quant.Metric {
		return []quant.Metric{stats.NewRealizedVariance(), stats.NewMaxDrawdown()}
	})

	start := time.Now()
	results, err := ens.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	summary := stats.Summarize(results)
	printSummary(cmd, cfg, summary, elapsed)

	if plot || csvOut != "" {
		sampleCfg := simCfg
		sampleCfg.RecordPath = true
		sample, err := mc.NewGenerator(proc, scheme).Run(context.Background(), sampleCfg)
		if err != nil {
			return err
		}
		if plot {
			cmd.Println(asciigraph.Plot(sample.Path.Component(0),
				asciigraph.Height(12), asciigraph.Width(72),
				asciigraph.Caption(fmt.Sprintf("%s sample path (seed %d)", cfg.Model, simCfg.Seed))))
		}
		if csvOut != "" {
			if err := export.WriteCSV(csvOut, sample.Path); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", csvOut)
		}
	}

	if jsonOut != "" {
		data := export.NewRunData(cfg.Model, cfg.Scheme, simCfg, cfg.Paths, results)
		if err := export.WriteJSON(jsonOut, data); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", jsonOut)
	}
	return nil
}

func printSummary(cmd *cobra.Command, cfg *config.Config, s stats.Summary, elapsed time.Duration) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", cfg.Model)
	fmt.Fprintf(w, "paths\t%d\n", s.Paths)
	fmt.Fprintf(w, "horizon\t%.2fy (dt %.5f)\n", cfg.Horizon, cfg.Dt)
	fmt.Fprintf(w, "terminal mean\t%.4f\n", s.Mean)
	fmt.Fprintf(w, "terminal stddev\t%.4f\n", s.StdDev)
	fmt.Fprintf(w, "p05 / median / p95\t%.4f / %.4f / %.4f\n", s.P05, s.Median, s.P95)
	fmt.Fprintf(w, "min / max\t%.4f / %.4f\n", s.Min, s.Max)
	fmt.Fprintf(w, "elapsed\t%s\n", elapsed.Round(time.Millisecond))
	w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	proc, err := cfg.BuildProcess(time.Now().UTC())
	if err != nil {
		return err
	}

	stepper, err := mc.NewStepper(proc, discretize.NewEuler(), cfg.SimConfig())
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(stepper, cfg.Model))
	_, err = program.Run()
	return err
}

func runPresets(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tPRESET")

	models := make([]string, 0, len(config.Presets))
	for m := range config.Presets {
		models = append(models, m)
	}
	sort.Strings(models)

	for _, m := range models {
		names := config.ListPresets(m)
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%s\n", m, name)
		}
	}
	w.Flush()
}
