// Package event provides the typed event variants and the in-process
// publish-subscribe broker that drives all fleet state transitions. It is
// structured into small files by concern:
//
//   - event.go: the closed Type enum and the four event variants.
//   - handler.go: Handler/HandlerFunc and registration identity.
//   - broker.go: the Broker (subscribe, unsubscribe, synchronous publish).
//   - metrics.go: Prometheus counters for dispatch activity.
//   - recorder.go: an in-memory recording handler for tests.
//
// Dispatch is synchronous and depth-first: Publish invokes every subscriber
// for the event's type in registration order on the calling goroutine, and a
// subscriber publishing from inside Handle has its event fully fanned out
// before the outer dispatch advances. Nothing here queues, retries, or runs
// in the background.
package event
