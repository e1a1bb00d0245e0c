// Package fleet models the vending machines and the subscribers that mutate
// them. It is structured into small files by concern:
//
//   - registry.go: the shared machine registry (id -> state).
//   - handlers.go: the four broker subscribers and Wire.
//   - service.go: the orchestration layer consumed by the HTTP API.
//   - loader.go: seed-file loading and sequential seeding.
//   - errors.go: error types and helpers (IsMachineNotFound, IsInvalidEvent).
//   - metrics.go: Prometheus counters and the per-machine stock gauge.
//
// The sale/refill rules deliberately mirror a simulation, not an accounting
// system: stock may go negative on an oversized sale, and a shortage keeps
// re-triggering corrective refills until the level recovers.
package fleet
