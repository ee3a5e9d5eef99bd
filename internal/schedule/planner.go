package schedule

import (
	"github.com/samber/lo"
)

// Planner is a caller-owned schedule under interactive construction: the
// sections a student has picked so far, keyed by session id. It is a plain
// value with no ambient state; every check goes through the same Validator
// the variant generator uses, so a section chip and a generation run can
// never disagree about the same state.
type Planner struct {
	validator    Validator
	sessionsById map[string]Session
	order        []string
}

func NewPlanner() *Planner {
	return &Planner{
		validator:    NewValidator(),
		sessionsById: make(map[string]Session),
	}
}

// CanAdd reports whether the raw session could join the schedule right
// now, and why not otherwise. The raw record is normalized first, exactly
// as Add would.
func (p *Planner) CanAdd(raw RawSession, courseCode string) Verdict {
	candidate := NormalizeSession(raw, courseCode)
	return p.validator.CanAdd(candidate, p.sessionsForCourse(courseCode), p.Sessions())
}

// Add normalizes and inserts the session if the validator accepts it. The
// returned verdict carries the rejection reason for user display.
func (p *Planner) Add(raw RawSession, courseCode string) Verdict {
	candidate := NormalizeSession(raw, courseCode)
	verdict := p.validator.CanAdd(candidate, p.sessionsForCourse(courseCode), p.Sessions())
	if !verdict.OK {
		return verdict
	}
	if _, exists := p.sessionsById[candidate.Id]; !exists {
		p.order = append(p.order, candidate.Id)
	}
	p.sessionsById[candidate.Id] = candidate
	return verdict
}

// Remove drops a session by id; unknown ids are a no-op.
func (p *Planner) Remove(sessionId string) {
	if _, exists := p.sessionsById[sessionId]; !exists {
		return
	}
	delete(p.sessionsById, sessionId)
	p.order = lo.Without(p.order, sessionId)
}

// Toggle removes the session if it is already scheduled, otherwise tries
// to add it. added reports which way it went; on a rejected add the
// verdict carries the reason.
func (p *Planner) Toggle(raw RawSession, courseCode string) (added bool, verdict Verdict) {
	id := firstIdentifier(raw.Id, raw.ActivityId, raw.RegistrationCode)
	if p.Has(id) {
		p.Remove(id)
		return false, accept()
	}
	verdict = p.Add(raw, courseCode)
	return verdict.OK, verdict
}

func (p *Planner) Has(sessionId string) bool {
	_, exists := p.sessionsById[sessionId]
	return exists
}

// Sessions returns the scheduled sessions in insertion order.
func (p *Planner) Sessions() []Session {
	return lo.Map(p.order, func(id string, _ int) Session {
		return p.sessionsById[id]
	})
}

func (p *Planner) Clear() {
	p.sessionsById = make(map[string]Session)
	p.order = nil
}

func (p *Planner) sessionsForCourse(courseCode string) []Session {
	return lo.Filter(p.Sessions(), func(s Session, _ int) bool {
		return s.CourseCode == courseCode
	})
}
