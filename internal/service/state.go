package service

// State is a workflow panel's position in its lifecycle. Every panel runs
// idle -> working -> {ready | failed}; ready transitions back to idle through
// panel-specific user actions.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateAnalyzing  State = "analyzing"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

// The one generic message for transport and unexpected failures. The
// original cause is logged, never surfaced.
const msgUnexpectedError = "An unexpected error occurred. Please try again."
