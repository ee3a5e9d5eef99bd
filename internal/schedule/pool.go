package schedule

// CoursePool holds one open course's candidate sessions, pre-partitioned
// by pairing role so the search engine never re-classifies per branch.
type CoursePool struct {
	CourseCode   string
	CourseTitle  string
	CourseCredit string

	Primaries           []Session
	SecondariesByLetter map[string][]Session
}

// NewCoursePool partitions a course's normalized sessions into primaries
// and secondaries grouped by their leading letter. Sessions whose code is
// neither one nor two letters are dropped here: they take no part in the
// primary/secondary pairing and the engine never auto-selects them.
func NewCoursePool(courseCode string, sessions []Session) CoursePool {
	pool := CoursePool{
		CourseCode:          courseCode,
		SecondariesByLetter: make(map[string][]Session),
	}
	for _, session := range sessions {
		letterPart, kind := Classify(session)
		switch kind {
		case KindPrimary:
			pool.Primaries = append(pool.Primaries, session)
		case KindSecondary:
			letter := letterPart[:1]
			pool.SecondariesByLetter[letter] = append(pool.SecondariesByLetter[letter], session)
		}
	}
	return pool
}

// MatchingSecondaries returns the secondaries paired with the given
// primary, i.e. those whose first letter equals the primary's letter.
func (p CoursePool) MatchingSecondaries(primary Session) []Session {
	letterPart, kind := Classify(primary)
	if kind != KindPrimary {
		return nil
	}
	return p.SecondariesByLetter[letterPart]
}
