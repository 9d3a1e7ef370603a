package domain

// RequestState tracks a single request from the UI's point of view.
type RequestState int

// Request states.
const (
	StateIdle RequestState = iota
	StateFileChosen
	StateSubmitted
	StateSucceeded
	StateFailed
)

// String returns the string representation of the state.
func (s RequestState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFileChosen:
		return "file_chosen"
	case StateSubmitted:
		return "submitted"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// CanTransition reports whether moving from s to next is legal.
// A submitted request cannot be cancelled; it only ends in success or failure.
func (s RequestState) CanTransition(next RequestState) bool {
	switch s {
	case StateIdle:
		// Idle may resubmit a file kept from the previous request.
		return next == StateFileChosen || next == StateSubmitted
	case StateFileChosen:
		return next == StateFileChosen || next == StateSubmitted
	case StateSubmitted:
		return next == StateSucceeded || next == StateFailed
	case StateSucceeded, StateFailed:
		return next == StateIdle
	default:
		return false
	}
}

// InFlight returns true while a request awaits its outcome.
func (s RequestState) InFlight() bool {
	return s == StateSubmitted
}
