package event

import "reflect"

// Handler receives events from the broker. Handle runs on the publishing
// goroutine and may call Broker.Publish again; such nested publishes are
// dispatched depth-first before Handle returns to the broker.
type Handler interface {
	Handle(Event)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(Event)

func (f HandlerFunc) Handle(ev Event) { f(ev) }

// sameHandler reports whether two handlers are the same registration target.
// Pointer handlers compare by identity. HandlerFunc values compare by code
// pointer, so two closures over the same function body are considered equal;
// callers that need to unsubscribe individual func handlers should register
// distinct named functions or use pointer receivers.
func sameHandler(a, b Handler) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Kind() == reflect.Func || bv.Kind() == reflect.Func {
		return av.Kind() == bv.Kind() && av.Pointer() == bv.Pointer()
	}
	if !av.Type().Comparable() || !bv.Type().Comparable() {
		return false
	}
	return a == b
}
