package event

import (
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// DefaultMaxDepth bounds the synchronous cascade unless overridden.
const DefaultMaxDepth = 32

// Broker owns the type -> subscriber-list mapping and performs synchronous,
// in-order fan-out. Dispatch is single-threaded: Publish must not be called
// from multiple goroutines at once (nested publishes from inside a Handle are
// the supported form of re-entrancy). Subscribe and Unsubscribe are safe for
// concurrent use.
type Broker struct {
	mu   sync.RWMutex
	subs map[Type][]Handler

	log      zerolog.Logger
	maxDepth int

	// depth is only touched on the dispatching goroutine.
	depth int

	published  atomic.Uint64
	delivered  atomic.Uint64
	unrouted   atomic.Uint64
	depthDrops atomic.Uint64
}

// Option configures a Broker.
type Option func(*Broker)

// WithLogger installs a structured logger used for drop reporting.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Broker) { b.log = l }
}

// WithMaxDepth bounds the nested publish depth. Crossing the bound drops the
// nested event and logs an error instead of recursing further. n <= 0
// disables the guard entirely, restoring unbounded cascades; a mutually
// re-triggering subscriber graph will then recurse until the stack runs out.
func WithMaxDepth(n int) Option {
	return func(b *Broker) { b.maxDepth = n }
}

// New creates an empty broker with the cascade guard at DefaultMaxDepth.
func New(opts ...Option) *Broker {
	b := &Broker{
		subs:     make(map[Type][]Handler),
		log:      zerolog.Nop(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers h to receive every future event of type t. The same
// handler may be registered multiple times and will be invoked once per
// registration. Registration order is delivery order.
func (b *Broker) Subscribe(t Type, h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.subs[t] = append(b.subs[t], h)
	b.mu.Unlock()
}

// Unsubscribe removes the first registration of h under t, matching by
// identity. Removing a handler that is not registered is a no-op.
func (b *Broker) Unsubscribe(t Type, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.subs[t]
	for i, cur := range list {
		if sameHandler(cur, h) {
			b.subs[t] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Publish dispatches ev to every handler registered for its type, in
// registration order, on the calling goroutine. A handler may publish again
// from inside Handle; the nested event fans out completely before the next
// sibling handler of ev runs. Publishing a type with no subscribers is a
// silent no-op.
func (b *Broker) Publish(ev Event) {
	t := ev.EventType()
	label := string(t)

	if b.maxDepth > 0 && b.depth >= b.maxDepth {
		b.depthDrops.Add(1)
		depthDropsTotal.WithLabelValues(label).Inc()
		b.log.Error().
			Str("event", label).
			Str("machine", ev.MachineID()).
			Int("max_depth", b.maxDepth).
			Msg("cascade depth exceeded, event dropped")
		return
	}

	b.mu.RLock()
	list := b.subs[t]
	// Snapshot so handlers can subscribe/unsubscribe without holding the lock
	// across dispatch; registrations made mid-publish see only later events.
	snapshot := append([]Handler(nil), list...)
	b.mu.RUnlock()

	b.published.Add(1)
	publishedTotal.WithLabelValues(label).Inc()

	if len(snapshot) == 0 {
		b.unrouted.Add(1)
		unroutedTotal.WithLabelValues(label).Inc()
		return
	}

	b.depth++
	defer func() { b.depth-- }()
	for _, h := range snapshot {
		h.Handle(ev)
		b.delivered.Add(1)
		deliveredTotal.WithLabelValues(label).Inc()
	}
}

// Stats is a read-only snapshot of dispatch counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	Unrouted      uint64
	DepthDrops    uint64
	Subscriptions int
}

// Stats returns the current dispatch counters.
func (b *Broker) Stats() Stats {
	b.mu.RLock()
	n := 0
	for _, list := range b.subs {
		n += len(list)
	}
	b.mu.RUnlock()
	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		Unrouted:      b.unrouted.Load(),
		DepthDrops:    b.depthDrops.Load(),
		Subscriptions: n,
	}
}
