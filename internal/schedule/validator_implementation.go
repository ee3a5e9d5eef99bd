package schedule

import (
	"strings"

	"github.com/samber/lo"
)

type standardValidator struct{}

func (v *standardValidator) CanAdd(candidate Session, committedForCourse []Session, allCommitted []Session) Verdict {
	letterPart, kind := Classify(candidate)

	switch kind {
	case KindPrimary:
		if _, exists := findByKind(committedForCourse, KindPrimary); exists {
			return reject(ReasonPrimaryExists)
		}
	case KindSecondary:
		if primary, exists := findByKind(committedForCourse, KindPrimary); exists {
			if !strings.HasPrefix(letterPart, primary.LetterPart()) {
				return reject(ReasonSecondaryMismatch)
			}
		}
		if _, exists := findByKind(committedForCourse, KindSecondary); exists {
			return reject(ReasonSecondaryExists)
		}
	}

	if HasTimeConflict(candidate, allCommitted) {
		return reject(ReasonTimeConflict)
	}
	return accept()
}

func findByKind(sessions []Session, kind SessionKind) (Session, bool) {
	return lo.Find(sessions, func(s Session) bool {
		_, k := Classify(s)
		return k == kind
	})
}
