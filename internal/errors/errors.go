package apperrors

// ValidationError blocks an operation before any network attempt is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(msg string) error {
	return &ValidationError{Msg: msg}
}

// GatewayError carries a failure from (or on the way to) the agent gateway.
// Gateway-reported errors keep their text verbatim; transport failures use
// the one generic message.
type GatewayError struct {
	Msg string
}

func (e *GatewayError) Error() string { return e.Msg }

func NewGateway(msg string) error {
	return &GatewayError{Msg: msg}
}

// BusyError refuses a trigger while the panel already has a call in flight.
type BusyError struct {
	Op string
}

func (e *BusyError) Error() string { return e.Op + " already in progress" }

func NewBusy(op string) error {
	return &BusyError{Op: op}
}

// StateError rejects an action the current workflow state does not allow,
// e.g. approving when no draft is ready.
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

func NewState(msg string) error {
	return &StateError{Msg: msg}
}
