package fleet

import (
	"sync"
	"time"

	"vendd/internal/event"
	"vendd/pkg/types"
)

// Service is the orchestration layer consumed by the HTTP API. Broker
// dispatch is single-threaded, so the service serializes external publishes
// with a mutex; nested publishes made by subscribers stay on the same
// goroutine and never touch the lock.
type Service struct {
	mu        sync.Mutex
	broker    *event.Broker
	registry  *Registry
	threshold int
	started   time.Time
}

// NewService wraps a wired broker and registry. threshold must match the one
// the handlers were wired with; zero selects the package default.
func NewService(b *event.Broker, reg *Registry, threshold int) *Service {
	if threshold == 0 {
		threshold = DefaultLowStockThreshold
	}
	return &Service{
		broker:    b,
		registry:  reg,
		threshold: threshold,
		started:   time.Now(),
	}
}

// ListMachines returns the current fleet, sorted by id.
func (s *Service) ListMachines() []types.Machine {
	return s.registry.List()
}

// GetMachine returns one machine's state.
func (s *Service) GetMachine(id string) (types.Machine, error) {
	m, ok := s.registry.Get(id)
	if !ok {
		return types.Machine{}, ErrMachineNotFound(id)
	}
	return m, nil
}

// PublishEvent validates an external event request, dispatches it through
// the broker, and returns the machine state once the full cascade has run.
func (s *Service) PublishEvent(req types.PublishEventRequest) (types.Machine, error) {
	if req.MachineID == "" {
		return types.Machine{}, ErrInvalidEvent("machine_id is required")
	}
	if req.Quantity <= 0 {
		return types.Machine{}, ErrInvalidEvent("quantity must be positive")
	}
	var ev event.Event
	switch req.Kind {
	case string(event.TypeSale):
		ev = event.NewSale(req.MachineID, req.Quantity)
	case string(event.TypeRefill):
		ev = event.NewRefill(req.MachineID, req.Quantity)
	default:
		return types.Machine{}, ErrInvalidEvent("kind must be \"sale\" or \"refill\"")
	}
	if _, ok := s.registry.Get(req.MachineID); !ok {
		return types.Machine{}, ErrMachineNotFound(req.MachineID)
	}

	s.mu.Lock()
	s.broker.Publish(ev)
	s.mu.Unlock()

	m, ok := s.registry.Get(req.MachineID)
	if !ok {
		return types.Machine{}, ErrMachineNotFound(req.MachineID)
	}
	return m, nil
}

// Status builds the detailed response for /status.
func (s *Service) Status() types.StatusResponse {
	machines := s.registry.List()
	low := 0
	for _, m := range machines {
		if m.StockLevel < s.threshold {
			low++
		}
	}
	bs := s.broker.Stats()
	now := time.Now()
	return types.StatusResponse{
		Machines:          machines,
		MachineCount:      len(machines),
		LowStockCount:     low,
		LowStockThreshold: s.threshold,
		Broker: types.BrokerStats{
			EventsPublished: bs.Published,
			EventsDelivered: bs.Delivered,
			EventsUnrouted:  bs.Unrouted,
			DepthDrops:      bs.DepthDrops,
			Subscriptions:   bs.Subscriptions,
		},
		UptimeSeconds:  int64(now.Sub(s.started).Seconds()),
		ServerTimeUnix: now.Unix(),
	}
}

// Ready reports whether the service can accept events.
func (s *Service) Ready() bool {
	return s.registry.Len() > 0
}
