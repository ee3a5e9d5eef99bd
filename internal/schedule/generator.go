package schedule

// CourseSelection is the sessions chosen for one course inside a variant:
// one primary, plus one matching secondary when the course offers any for
// that primary's letter.
type CourseSelection struct {
	CourseCode   string
	CourseTitle  string
	CourseCredit string
	Sessions     []Session
}

// Variant is one complete, validated combination of session choices,
// covering the locked courses and every open course. Variants are built
// only at fully-validated leaves of the search and never mutated after
// emission.
type Variant struct {
	Id      string
	Courses []CourseSelection
}

// Generator enumerates every valid schedule variant. The search is
// exhaustive: no cap, no ranking, no preference pruning. Callers invoking
// it on pathologically large inputs own their throttling; the engine runs
// to completion.
type Generator interface {
	// Generate performs backtracking over the open courses, holding the
	// locked sessions as fixed constraints. It returns every combination
	// assigning each open course a primary (and a matching secondary when
	// one exists) with no meeting-time overlap anywhere in the variant.
	// An empty open set yields no variants: there is nothing to vary.
	Generate(locked []Session, open []CoursePool) []Variant
}

func NewGenerator() Generator {
	return &backtrackingGenerator{validator: NewValidator()}
}
