package form

// State is the submission state of the form.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	// StateFailed behaves like StateIdle: the user may submit again.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// busy reports whether a submit must be ignored.
func (s State) busy() bool {
	return s == StateSubmitting || s == StateSucceeded
}
