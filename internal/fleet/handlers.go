package fleet

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"vendd/internal/event"
)

// DefaultLowStockThreshold is the stock level below which a machine is
// considered to be in shortage.
const DefaultLowStockThreshold = 3

// DefaultRefillMax bounds the corrective refill quantity: drawn uniformly
// from [0, DefaultRefillMax).
const DefaultRefillMax = 9

// SaleHandler applies Sale events to the registry and raises a
// LowStockWarning when the sale pushes a machine below the threshold.
type SaleHandler struct {
	registry  *Registry
	broker    *event.Broker
	threshold int
	log       zerolog.Logger
}

func (h *SaleHandler) Handle(ev event.Event) {
	sale, ok := ev.(event.Sale)
	if !ok {
		return
	}
	_, after, err := h.registry.Adjust(sale.Machine, -sale.SoldQuantity)
	if err != nil {
		lookupMissesTotal.WithLabelValues(string(event.TypeSale)).Inc()
		h.log.Error().Str("machine", sale.Machine).Int("quantity", sale.SoldQuantity).
			Msg("sale for unknown machine, event dropped")
		return
	}
	salesAppliedTotal.Inc()
	h.log.Debug().Str("machine", sale.Machine).Int("quantity", sale.SoldQuantity).
		Int("stock", after).Msg("sale applied")
	if after < h.threshold {
		h.broker.Publish(event.NewLowStockWarning(sale.Machine))
	}
}

// RefillHandler applies Refill events to the registry and classifies the
// transition: a StockLevelOk fires only when the refill carries the machine
// across the threshold from below, and a further LowStockWarning fires when
// the machine is still in shortage afterwards.
type RefillHandler struct {
	registry  *Registry
	broker    *event.Broker
	threshold int
	log       zerolog.Logger
}

func (h *RefillHandler) Handle(ev event.Event) {
	refill, ok := ev.(event.Refill)
	if !ok {
		return
	}
	before, after, err := h.registry.Adjust(refill.Machine, refill.RefillQuantity)
	if err != nil {
		lookupMissesTotal.WithLabelValues(string(event.TypeRefill)).Inc()
		h.log.Error().Str("machine", refill.Machine).Int("quantity", refill.RefillQuantity).
			Msg("refill for unknown machine, event dropped")
		return
	}
	refillsAppliedTotal.Inc()
	h.log.Debug().Str("machine", refill.Machine).Int("quantity", refill.RefillQuantity).
		Int("stock", after).Msg("refill applied")
	switch {
	case before < h.threshold && after >= h.threshold:
		h.broker.Publish(event.NewStockLevelOk(refill.Machine))
	case after < h.threshold:
		h.broker.Publish(event.NewLowStockWarning(refill.Machine))
	}
}

// LowStockHandler reacts to a shortage by publishing a corrective Refill with
// a random quantity. It never touches the registry itself; the state change
// flows back through the broker to the RefillHandler.
type LowStockHandler struct {
	broker *event.Broker
	rng    *rand.Rand
	max    int
	log    zerolog.Logger
}

func (h *LowStockHandler) Handle(ev event.Event) {
	warning, ok := ev.(event.LowStockWarning)
	if !ok {
		return
	}
	lowStockWarningsTotal.Inc()
	qty := h.rng.Intn(h.max)
	h.log.Info().Str("machine", warning.Machine).Int("quantity", qty).
		Msg("low stock, dispatching refill")
	h.broker.Publish(event.NewRefill(warning.Machine, qty))
}

// StockOkHandler is a pure observer: it reports recovery and does nothing
// else.
type StockOkHandler struct {
	log zerolog.Logger
}

func (h *StockOkHandler) Handle(ev event.Event) {
	okEv, ok := ev.(event.StockLevelOk)
	if !ok {
		return
	}
	stockRecoveriesTotal.Inc()
	h.log.Info().Str("machine", okEv.Machine).Msg("stock level healthy again")
}

// HandlerSet bundles the four wired subscribers.
type HandlerSet struct {
	Sale     *SaleHandler
	Refill   *RefillHandler
	LowStock *LowStockHandler
	StockOk  *StockOkHandler
}

// WireConfig carries the knobs for Wire. Zero values select package
// defaults; a nil Rand gets a time-seeded source.
type WireConfig struct {
	Threshold int
	RefillMax int
	Rand      *rand.Rand
	Logger    zerolog.Logger
}

// Wire subscribes a full handler set to the broker in the canonical order
// and returns it. The registry is shared by reference between the sale and
// refill handlers.
func Wire(b *event.Broker, reg *Registry, cfg WireConfig) *HandlerSet {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultLowStockThreshold
	}
	if cfg.RefillMax <= 0 {
		cfg.RefillMax = DefaultRefillMax
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	hs := &HandlerSet{
		Sale:     &SaleHandler{registry: reg, broker: b, threshold: cfg.Threshold, log: cfg.Logger},
		Refill:   &RefillHandler{registry: reg, broker: b, threshold: cfg.Threshold, log: cfg.Logger},
		LowStock: &LowStockHandler{broker: b, rng: cfg.Rand, max: cfg.RefillMax, log: cfg.Logger},
		StockOk:  &StockOkHandler{log: cfg.Logger},
	}
	b.Subscribe(event.TypeSale, hs.Sale)
	b.Subscribe(event.TypeRefill, hs.Refill)
	b.Subscribe(event.TypeLowStockWarning, hs.LowStock)
	b.Subscribe(event.TypeStockLevelOk, hs.StockOk)
	return hs
}
