package schedule

// RejectionReason identifies why a session cannot join a schedule. The
// values double as user-facing message keys.
type RejectionReason string

const (
	// ReasonPrimaryExists: the course already has a single-letter section.
	ReasonPrimaryExists RejectionReason = "single-letter-exists"
	// ReasonSecondaryExists: the course already has a double-letter section.
	ReasonSecondaryExists RejectionReason = "double-letter-exists"
	// ReasonSecondaryMismatch: the double-letter section's leading letter
	// does not match the course's committed primary.
	ReasonSecondaryMismatch RejectionReason = "double-letter-prefix-mismatch"
	// ReasonTimeConflict: the session's meetings overlap a committed
	// session's meetings.
	ReasonTimeConflict RejectionReason = "time-conflict"
)

// Verdict is the outcome of a compatibility check. Rejections are values,
// never errors: expected input variation must not abort a search.
type Verdict struct {
	OK     bool
	Reason RejectionReason
}

func accept() Verdict {
	return Verdict{OK: true}
}

func reject(reason RejectionReason) Verdict {
	return Verdict{Reason: reason}
}

// Validator is the single gate deciding whether a session may join a
// schedule. Interactive section toggling and the variant search engine
// both go through it, so a given state always yields the same verdict in
// either flow.
type Validator interface {
	// CanAdd checks the candidate against the pairing rules of its course
	// (committedForCourse) and against the meeting times of every
	// committed session across all courses (allCommitted).
	CanAdd(candidate Session, committedForCourse []Session, allCommitted []Session) Verdict
}

func NewValidator() Validator {
	return &standardValidator{}
}
