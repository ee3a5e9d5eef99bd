package schedule

import (
	"fmt"
	"slices"
)

type backtrackingGenerator struct {
	validator Validator
}

// searchState is the accumulator of one Generate invocation. Sessions are
// pushed immediately before a recursive call and popped immediately after
// it returns, on every path, so no branch ever observes a sibling's
// choices.
type searchState struct {
	committed []Session
	perCourse map[string][]Session
}

func (s *searchState) push(session Session) {
	s.committed = append(s.committed, session)
	s.perCourse[session.CourseCode] = append(s.perCourse[session.CourseCode], session)
}

func (s *searchState) pop() {
	last := s.committed[len(s.committed)-1]
	s.committed = s.committed[:len(s.committed)-1]
	forCourse := s.perCourse[last.CourseCode]
	s.perCourse[last.CourseCode] = forCourse[:len(forCourse)-1]
}

func (g *backtrackingGenerator) Generate(locked []Session, open []CoursePool) []Variant {
	variants := make([]Variant, 0)
	if len(open) == 0 {
		return variants
	}

	state := &searchState{
		committed: slices.Clone(locked),
		perCourse: make(map[string][]Session),
	}
	for _, session := range locked {
		state.perCourse[session.CourseCode] = append(state.perCourse[session.CourseCode], session)
	}

	g.search(locked, open, 0, state, &variants)
	return variants
}

func (g *backtrackingGenerator) search(locked []Session, open []CoursePool, index int, state *searchState, variants *[]Variant) {
	if index == len(open) {
		// Every session on this branch passed the validator when it was
		// committed, so the leaf needs no re-validation.
		*variants = append(*variants, g.emit(locked, open, state, len(*variants)+1))
		return
	}

	pool := open[index]
	// A course with no primary section cannot be scheduled at all; the
	// whole branch is infeasible, not just this course.
	if len(pool.Primaries) == 0 {
		return
	}

	for _, primary := range pool.Primaries {
		if !g.validator.CanAdd(primary, state.perCourse[pool.CourseCode], state.committed).OK {
			continue
		}
		state.push(primary)

		secondaries := pool.MatchingSecondaries(primary)
		if len(secondaries) == 0 {
			// No paired secondary exists for this primary's letter, so the
			// course's choice is the primary alone.
			g.search(locked, open, index+1, state, variants)
		} else {
			// A matching secondary exists, so one must be chosen.
			for _, secondary := range secondaries {
				if !g.validator.CanAdd(secondary, state.perCourse[pool.CourseCode], state.committed).OK {
					continue
				}
				state.push(secondary)
				g.search(locked, open, index+1, state, variants)
				state.pop()
			}
		}

		state.pop()
	}
}

func (g *backtrackingGenerator) emit(locked []Session, open []CoursePool, state *searchState, ordinal int) Variant {
	courses := make([]CourseSelection, 0, len(open))

	// Locked courses first, in first-seen order.
	seen := make(map[string]bool)
	for _, session := range locked {
		if seen[session.CourseCode] {
			continue
		}
		seen[session.CourseCode] = true
		courses = append(courses, CourseSelection{
			CourseCode: session.CourseCode,
			Sessions:   lockedForCourse(locked, session.CourseCode),
		})
	}

	for _, pool := range open {
		courses = append(courses, CourseSelection{
			CourseCode:   pool.CourseCode,
			CourseTitle:  pool.CourseTitle,
			CourseCredit: pool.CourseCredit,
			Sessions:     slices.Clone(state.perCourse[pool.CourseCode]),
		})
	}

	return Variant{
		Id:      fmt.Sprintf("variant-%d", ordinal),
		Courses: courses,
	}
}

func lockedForCourse(locked []Session, courseCode string) []Session {
	sessions := make([]Session, 0, 2)
	for _, session := range locked {
		if session.CourseCode == courseCode {
			sessions = append(sessions, session)
		}
	}
	return sessions
}
