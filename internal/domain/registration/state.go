package registration

// State is the submission state of a form instance. The confirmation modal is
// open exactly when the state is ConfirmPending.
type State int

const (
	StateEditing State = iota
	StateConfirmPending
	StateSubmitting
	StateSucceeded
	// StateFailed is Editing after a rejected submission; the draft is intact
	// and the modal is closed.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateConfirmPending:
		return "confirm_pending"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
