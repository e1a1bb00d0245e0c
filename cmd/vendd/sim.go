package main

import (
	"github.com/spf13/cobra"

	"vendd/internal/sim"
)

func newSimCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sim",
		Short: "Run a bounded fleet simulation and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			log := newLogger(cfg.LogLevel)

			broker, reg, err := buildFleet(cfg, log)
			if err != nil {
				return err
			}

			events, _ := cmd.Flags().GetInt("events")
			if events > 0 {
				cfg.SimEvents = events
			}
			runner := sim.NewRunner(broker, reg, sim.Options{
				Events:    cfg.SimEvents,
				Seed:      cfg.Seed,
				RefillMax: cfg.RefillMax,
				Logger:    log,
			})
			runner.Run()

			for _, m := range reg.List() {
				log.Info().Str("machine", m.ID).Int("stock", m.StockLevel).
					Msg("final stock")
			}
			stats := broker.Stats()
			log.Info().
				Uint64("published", stats.Published).
				Uint64("delivered", stats.Delivered).
				Uint64("depth_drops", stats.DepthDrops).
				Msg("simulation complete")
			return nil
		},
	}
	c.Flags().Int("events", 0, "Number of driver events to publish")
	return c
}
