package schedule

import "github.com/samber/lo"

// EnrollState is a session's registration availability, derived from the
// catalog payload's enrollment fields.
type EnrollState string

const (
	EnrollOpen                EnrollState = "open"
	EnrollClosed              EnrollState = "closed"
	EnrollAddCodeRequired     EnrollState = "add code required"
	EnrollFacultyCodeRequired EnrollState = "faculty code required"
	EnrollOther               EnrollState = "other"
)

// GenerationOptions controls which sessions are eligible when building
// pools for variant generation.
type GenerationOptions struct {
	// IncludeClosedSessions admits sessions that are full or inactive.
	IncludeClosedSessions bool
	// IncludeCoursesRequiringCodes admits sessions needing an add code or
	// faculty code to register.
	IncludeCoursesRequiringCodes bool
}

func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{}
}

// DeriveEnrollState maps a raw session's enrollment fields to a state. An
// inactive stateKey wins; otherwise a full section is closed, then code
// requirements are reported, and whatever remains is open.
func DeriveEnrollState(raw RawSession) EnrollState {
	if raw.StateKey != "" && raw.StateKey != "active" {
		return EnrollOther
	}
	if isSessionClosed(raw) {
		return EnrollClosed
	}
	switch raw.EnrollStatus {
	case string(EnrollAddCodeRequired):
		return EnrollAddCodeRequired
	case string(EnrollFacultyCodeRequired):
		return EnrollFacultyCodeRequired
	}
	return EnrollOpen
}

func isSessionClosed(raw RawSession) bool {
	if raw.StateKey != "" && raw.StateKey != "active" {
		return true
	}
	count := coerceInt(raw.EnrollCount)
	maximum := coerceInt(raw.EnrollMaximum)
	return maximum > 0 && count >= maximum
}

func isSessionRequiringCode(raw RawSession) bool {
	return raw.EnrollStatus == string(EnrollAddCodeRequired) ||
		raw.EnrollStatus == string(EnrollFacultyCodeRequired) ||
		raw.AddCodeRequired
}

// FilterSessionsByOptions drops raw sessions the options make ineligible.
func FilterSessionsByOptions(sessions []RawSession, options GenerationOptions) []RawSession {
	return lo.Filter(sessions, func(raw RawSession, _ int) bool {
		if !options.IncludeClosedSessions && isSessionClosed(raw) {
			return false
		}
		if !options.IncludeCoursesRequiringCodes && isSessionRequiringCode(raw) {
			return false
		}
		return true
	})
}

func coerceInt(value any) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
