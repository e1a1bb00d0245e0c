package types

// Machine represents the current state of one vending machine.
type Machine struct {
	// Stable identifier for the machine, unique within the fleet.
	// example: 001
	ID string `json:"id" example:"001"`
	// Current stock level. May be negative when an oversized sale was
	// applied; the fleet model deliberately does not clamp it.
	// example: 7
	StockLevel int `json:"stock_level" example:"7"`
}
