package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"

	// StatusLegacyApproved is the pre-moderation value; the status migration
	// rewrites it (and missing values) to StatusPublished.
	StatusLegacyApproved Status = "approved"
)

// ParseStatus accepts only the steady-state statuses.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusPublished, StatusRejected:
		return st, nil
	default:
		return "", ErrInvalidStatus
	}
}

// IsTerminal reports whether no further moderation transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusPublished || s == StatusRejected
}

// IsLegacy reports whether the status predates the moderation workflow.
func (s Status) IsLegacy() bool {
	return s == "" || s == StatusLegacyApproved
}

// CanTransition implements the moderation state machine. Staying in the same
// state is allowed and is a no-op for callers.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return from == StatusPending && to.IsTerminal()
}
