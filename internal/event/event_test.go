package event

import "testing"

func TestEventTypesAreUniqueRoutingKeys(t *testing.T) {
	events := []Event{
		NewSale("001", 2),
		NewRefill("001", 4),
		NewLowStockWarning("001"),
		NewStockLevelOk("001"),
	}
	seen := make(map[Type]bool)
	for _, ev := range events {
		tt := ev.EventType()
		if seen[tt] {
			t.Fatalf("duplicate routing key %q", tt)
		}
		seen[tt] = true
		if ev.MachineID() != "001" {
			t.Fatalf("machine id lost for %q", tt)
		}
	}
}

func TestSameHandlerIdentity(t *testing.T) {
	a := NewRecorder()
	b := NewRecorder()
	if !sameHandler(a, a) {
		t.Fatalf("pointer handler should match itself")
	}
	if sameHandler(a, b) {
		t.Fatalf("distinct pointer handlers should not match")
	}
	var f1 HandlerFunc = func(Event) {}
	var f2 HandlerFunc = func(Event) {}
	if !sameHandler(f1, f1) {
		t.Fatalf("func handler should match itself")
	}
	if sameHandler(f1, f2) {
		t.Fatalf("distinct func literals should not match")
	}
	if sameHandler(a, f1) {
		t.Fatalf("pointer and func handlers should not match")
	}
}
