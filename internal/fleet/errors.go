package fleet

// machineNotFoundError signals a referenced machine id absent from the
// registry, for 404 mapping at the HTTP layer.
type machineNotFoundError struct{ id string }

func (e machineNotFoundError) Error() string { return "machine not found: " + e.id }

// ErrMachineNotFound constructs a machineNotFoundError.
func ErrMachineNotFound(id string) error { return machineNotFoundError{id: id} }

// IsMachineNotFound reports whether err indicates a missing machine id.
func IsMachineNotFound(err error) bool {
	_, ok := err.(machineNotFoundError)
	return ok
}

// duplicateMachineError signals an Add with an id already in the registry.
type duplicateMachineError struct{ id string }

func (e duplicateMachineError) Error() string { return "duplicate machine id: " + e.id }

// IsDuplicateMachine reports whether err indicates a duplicate machine id.
func IsDuplicateMachine(err error) bool {
	_, ok := err.(duplicateMachineError)
	return ok
}

// invalidEventError signals a malformed external event request (bad kind,
// missing machine id, non-positive quantity) for 400 mapping.
type invalidEventError struct{ msg string }

func (e invalidEventError) Error() string { return e.msg }

// ErrInvalidEvent constructs an invalidEventError.
func ErrInvalidEvent(msg string) error { return invalidEventError{msg: msg} }

// IsInvalidEvent reports whether err indicates a malformed event request.
func IsInvalidEvent(err error) bool {
	_, ok := err.(invalidEventError)
	return ok
}
