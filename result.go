package glcts

import "fmt"

// Status is the terminal outcome of a single case.
type Status int

// Statuses are ordered by severity: when several outcomes occur in
// one case, the most severe one wins.
const (
	// Pass means every check in the case succeeded.
	Pass Status = iota

	// NotSupported means the case requires a feature the implementation
	// does not provide. It is a neutral outcome, not a failure.
	NotSupported

	// Fail means at least one check in the case failed.
	Fail

	// InternalError means the case body panicked or the harness itself
	// misbehaved while running the case.
	InternalError
)

// String returns the conventional conformance-log spelling of the status.
func (s Status) String() string {
	switch s {
	case Pass:
		return "Pass"
	case Fail:
		return "Fail"
	case NotSupported:
		return "NotSupported"
	case InternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one case: a status plus the first message
// that determined it (empty for a clean pass).
type Result struct {
	Status  Status
	Message string
}

func (r Result) String() string {
	if r.Message == "" {
		return r.Status.String()
	}
	return r.Status.String() + ": " + r.Message
}
