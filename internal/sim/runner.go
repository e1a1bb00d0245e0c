// Package sim drives the fleet for demonstrations: it feeds a bounded
// sequence of pseudo-random sale and refill events into the broker. It sits
// outside the dispatch core; nothing here is required for serving.
package sim

import (
	"math/rand"

	"github.com/rs/zerolog"

	"vendd/internal/event"
	"vendd/internal/fleet"
)

// Options configures a simulation run. Zero values select defaults.
type Options struct {
	// Events is the number of external events to publish. Default 30.
	Events int
	// Seed makes the run reproducible. 0 keeps it reproducible too (rand
	// treats it like any other seed); callers wanting variety pass the clock.
	Seed int64
	// MaxSaleQuantity bounds a single sale: quantity in [1, MaxSaleQuantity].
	// Default 3.
	MaxSaleQuantity int
	// RefillMax bounds a driver-issued refill: quantity in [1, RefillMax).
	// Default fleet.DefaultRefillMax.
	RefillMax int
	// SaleWeight is the chance in percent that a step emits a sale rather
	// than a refill. Default 80.
	SaleWeight int
	Logger     zerolog.Logger
}

// Runner emits external events against a wired broker and registry.
type Runner struct {
	broker   *event.Broker
	registry *fleet.Registry
	rng      *rand.Rand
	opts     Options
}

// NewRunner builds a runner for an already wired broker/registry pair.
func NewRunner(b *event.Broker, reg *fleet.Registry, opts Options) *Runner {
	if opts.Events <= 0 {
		opts.Events = 30
	}
	if opts.MaxSaleQuantity <= 0 {
		opts.MaxSaleQuantity = 3
	}
	if opts.RefillMax <= 1 {
		opts.RefillMax = fleet.DefaultRefillMax
	}
	if opts.SaleWeight <= 0 || opts.SaleWeight > 100 {
		opts.SaleWeight = 80
	}
	return &Runner{
		broker:   b,
		registry: reg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		opts:     opts,
	}
}

// Run publishes the configured number of events, one full cascade at a time,
// and returns once the last cascade has drained.
func (r *Runner) Run() {
	machines := r.registry.List()
	if len(machines) == 0 {
		r.opts.Logger.Warn().Msg("simulation skipped, fleet is empty")
		return
	}
	for i := 0; i < r.opts.Events; i++ {
		id := machines[r.rng.Intn(len(machines))].ID
		var ev event.Event
		if r.rng.Intn(100) < r.opts.SaleWeight {
			ev = event.NewSale(id, 1+r.rng.Intn(r.opts.MaxSaleQuantity))
		} else {
			ev = event.NewRefill(id, 1+r.rng.Intn(r.opts.RefillMax-1))
		}
		r.opts.Logger.Info().
			Int("step", i+1).
			Str("event", string(ev.EventType())).
			Str("machine", id).
			Msg("driver event")
		r.broker.Publish(ev)
	}
}
