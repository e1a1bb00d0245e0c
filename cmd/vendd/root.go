package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"vendd/internal/config"
	"vendd/internal/event"
	"vendd/internal/fleet"
)

// newRootCmd constructs the Cobra command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "vendd",
		Short:         "Event-driven vending machine fleet daemon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to a config file (.yaml/.json/.toml)")
	root.PersistentFlags().String("addr", "", "HTTP listen address (defaults VENDD_ADDR or :8080)")
	root.PersistentFlags().String("fleet-file", "", "Fleet seed file listing machines (id, stock)")
	root.PersistentFlags().Int("machines", 0, "Number of machines to seed when no fleet file is given")
	root.PersistentFlags().Int("initial-stock", 0, "Initial stock level for seeded machines")
	root.PersistentFlags().Int("threshold", 0, "Low-stock threshold")
	root.PersistentFlags().Int("refill-max", 0, "Corrective refill quantity upper bound (exclusive)")
	root.PersistentFlags().Int("max-depth", 0, "Cascade depth limit; negative disables the guard")
	root.PersistentFlags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	root.PersistentFlags().String("log-level", "", "Log level: debug|info|warn|error (defaults VENDD_LOG_LEVEL or info)")

	root.AddCommand(newServeCmd(), newSimCmd())
	return root
}

// loadSettings merges config file, environment defaults, and flags.
// Precedence: flag > config file > environment > built-in default.
func loadSettings(cmd *cobra.Command) (config.Config, error) {
	flags := cmd.Flags()
	var cfg config.Config
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
	if flags.Changed("fleet-file") {
		cfg.FleetFile, _ = flags.GetString("fleet-file")
	}
	if flags.Changed("machines") {
		cfg.MachineCount, _ = flags.GetInt("machines")
	}
	if flags.Changed("initial-stock") {
		cfg.InitialStock, _ = flags.GetInt("initial-stock")
	}
	if flags.Changed("threshold") {
		cfg.LowStockThreshold, _ = flags.GetInt("threshold")
	}
	if flags.Changed("refill-max") {
		cfg.RefillMax, _ = flags.GetInt("refill-max")
	}
	if flags.Changed("max-depth") {
		cfg.MaxCascadeDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if cfg.Addr == "" {
		cfg.Addr = os.Getenv("VENDD_ADDR")
	}
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = os.Getenv("VENDD_LOG_LEVEL")
	}
	if cfg.MachineCount <= 0 {
		cfg.MachineCount = 3
	}
	if cfg.InitialStock == 0 {
		cfg.InitialStock = 10
	}
	if cfg.LowStockThreshold == 0 {
		cfg.LowStockThreshold = fleet.DefaultLowStockThreshold
	}
	if cfg.RefillMax <= 0 {
		cfg.RefillMax = fleet.DefaultRefillMax
	}
	if cfg.MaxCascadeDepth == 0 {
		cfg.MaxCascadeDepth = event.DefaultMaxDepth
	}
	if cfg.SimEvents <= 0 {
		cfg.SimEvents = 30
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// newLogger builds the process logger at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// buildFleet constructs the registry, broker, and handler set from settings.
func buildFleet(cfg config.Config, log zerolog.Logger) (*event.Broker, *fleet.Registry, error) {
	var reg *fleet.Registry
	if cfg.FleetFile != "" {
		loaded, err := fleet.LoadFile(cfg.FleetFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load fleet: %w", err)
		}
		reg = loaded
	} else {
		reg = fleet.Seed(cfg.MachineCount, cfg.InitialStock)
	}

	broker := event.New(
		event.WithLogger(log),
		event.WithMaxDepth(cfg.MaxCascadeDepth),
	)
	rng := newRand(cfg.Seed)
	fleet.Wire(broker, reg, fleet.WireConfig{
		Threshold: cfg.LowStockThreshold,
		RefillMax: cfg.RefillMax,
		Rand:      rng,
		Logger:    log,
	})
	return broker, reg, nil
}
