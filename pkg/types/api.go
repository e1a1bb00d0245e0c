package types

// PublishEventRequest is the payload for POST /events.
// Only externally produced event kinds are accepted; warning and recovery
// events are emitted internally by the dispatch cascade.
type PublishEventRequest struct {
	// Event kind: "sale" or "refill".
	// example: sale
	Kind string `json:"kind" example:"sale"`
	// Target machine identifier.
	// example: 001
	MachineID string `json:"machine_id" example:"001"`
	// Units sold or refilled. Must be positive.
	// example: 3
	Quantity int `json:"quantity" example:"3"`
}

// PublishEventResponse is returned by POST /events after the full
// synchronous cascade triggered by the event has run to completion.
type PublishEventResponse struct {
	// Machine state after the event and any follow-up events were applied.
	Machine Machine `json:"machine"`
}

// MachinesResponse wraps the fleet listing returned by GET /machines.
type MachinesResponse struct {
	// All machines in the fleet, sorted by id.
	Machines []Machine `json:"machines"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: machine not found: 999
	Error string `json:"error" example:"machine not found: 999"`
	// HTTP status code.
	// example: 404
	Code int `json:"code" example:"404"`
}

// BrokerStats summarizes broker dispatch activity for /status.
type BrokerStats struct {
	// Total events accepted by Publish.
	// example: 120
	EventsPublished uint64 `json:"events_published" example:"120"`
	// Total handler invocations performed.
	// example: 240
	EventsDelivered uint64 `json:"events_delivered" example:"240"`
	// Events dropped because they had no registered subscribers.
	// example: 2
	EventsUnrouted uint64 `json:"events_unrouted" example:"2"`
	// Nested events dropped by the cascade depth guard.
	// example: 0
	DepthDrops uint64 `json:"depth_drops" example:"0"`
	// Number of active subscriptions across all event types.
	// example: 4
	Subscriptions int `json:"subscriptions" example:"4"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// All machines in the fleet, sorted by id.
	Machines []Machine `json:"machines"`
	// Number of machines in the fleet.
	// example: 3
	MachineCount int `json:"machine_count" example:"3"`
	// Number of machines currently below the low-stock threshold.
	// example: 1
	LowStockCount int `json:"low_stock_count" example:"1"`
	// Low-stock threshold in effect.
	// example: 3
	LowStockThreshold int `json:"low_stock_threshold" example:"3"`
	// Broker dispatch counters.
	Broker BrokerStats `json:"broker"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
