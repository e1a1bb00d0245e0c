package fleet

import (
	"sort"
	"sync"

	"vendd/pkg/types"
)

// Registry holds the state of every machine in the fleet, keyed by id.
// Machine ids are unique; machines are added once and never removed. All
// subscribers share one Registry by reference, so a mutation made while
// handling one event is visible to every later dispatch.
//
// The lock serializes the read-modify-write in Adjust so the registry stays
// correct even when events arrive from HTTP goroutines while the status
// endpoints read it.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]*types.Machine
}

func NewRegistry() *Registry {
	return &Registry{machines: make(map[string]*types.Machine)}
}

// Add registers a new machine with the given initial stock. Adding an id
// that already exists returns a duplicate error and leaves the registry
// unchanged.
func (r *Registry) Add(id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.machines[id]; ok {
		return duplicateMachineError{id: id}
	}
	r.machines[id] = &types.Machine{ID: id, StockLevel: stock}
	stockLevel.WithLabelValues(id).Set(float64(stock))
	return nil
}

// Get returns a copy of the machine state, if present.
func (r *Registry) Get(id string) (types.Machine, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.machines[id]
	if !ok {
		return types.Machine{}, false
	}
	return *m, true
}

// Adjust applies a stock delta to one machine and returns the levels before
// and after. The level is deliberately not clamped; an oversized sale drives
// it negative. A missing id returns ErrMachineNotFound.
func (r *Registry) Adjust(id string, delta int) (before, after int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.machines[id]
	if !ok {
		return 0, 0, machineNotFoundError{id: id}
	}
	before = m.StockLevel
	m.StockLevel += delta
	after = m.StockLevel
	stockLevel.WithLabelValues(id).Set(float64(after))
	return before, after, nil
}

// List returns copies of all machines, sorted by id.
func (r *Registry) List() []types.Machine {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]types.Machine, 0, len(r.machines))
	for _, m := range r.machines {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of machines in the fleet.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.machines)
}
