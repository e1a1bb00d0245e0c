package event

// Type is the routing key for broker dispatch. The set of types is closed;
// no two semantic event kinds share a value.
type Type string

const (
	TypeSale            Type = "sale"
	TypeRefill          Type = "refill"
	TypeLowStockWarning Type = "low_stock_warning"
	TypeStockLevelOk    Type = "stock_level_ok"
)

// Event is an immutable record of a domain occurrence. Variants are plain
// value structs; once constructed they are never mutated.
type Event interface {
	// EventType returns the routing key, stable for the process lifetime.
	EventType() Type
	// MachineID identifies the machine the event concerns.
	MachineID() string
}

// Sale records units dispensed from a machine.
type Sale struct {
	Machine      string
	SoldQuantity int
}

// NewSale constructs a Sale event. Quantity is expected to be positive.
func NewSale(machineID string, qty int) Sale {
	return Sale{Machine: machineID, SoldQuantity: qty}
}

func (e Sale) EventType() Type   { return TypeSale }
func (e Sale) MachineID() string { return e.Machine }

// Refill records units added to a machine.
type Refill struct {
	Machine        string
	RefillQuantity int
}

// NewRefill constructs a Refill event. Quantity is expected to be positive.
func NewRefill(machineID string, qty int) Refill {
	return Refill{Machine: machineID, RefillQuantity: qty}
}

func (e Refill) EventType() Type   { return TypeRefill }
func (e Refill) MachineID() string { return e.Machine }

// LowStockWarning signals that a machine's stock fell below the threshold.
type LowStockWarning struct {
	Machine string
}

func NewLowStockWarning(machineID string) LowStockWarning {
	return LowStockWarning{Machine: machineID}
}

func (e LowStockWarning) EventType() Type   { return TypeLowStockWarning }
func (e LowStockWarning) MachineID() string { return e.Machine }

// StockLevelOk signals that a machine's stock recovered to a healthy level.
type StockLevelOk struct {
	Machine string
}

func NewStockLevelOk(machineID string) StockLevelOk {
	return StockLevelOk{Machine: machineID}
}

func (e StockLevelOk) EventType() Type   { return TypeStockLevelOk }
func (e StockLevelOk) MachineID() string { return e.Machine }
