package schedule

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// RawCourse is one course as it arrives from the catalog or plan layer:
// metadata plus its raw session list.
type RawCourse struct {
	CourseCode   string `mapstructure:"courseCode"`
	CourseTitle  string `mapstructure:"courseTitle"`
	CourseCredit any    `mapstructure:"courseCredit"`
	Sessions     []RawSession
}

// PlanInput is a generation request. Scheduled courses with sessions are
// locked; scheduled courses without sessions are open and get their
// candidate pools from the catalog payload.
type PlanInput struct {
	Scheduled []RawCourse
	Catalog   []RawCourse
}

func InputFromJson(file string) (PlanInput, error) {
	bytes, _ := os.ReadFile(file)
	var inputJson map[string]any
	err := json.Unmarshal(bytes, &inputJson)
	if err != nil {
		return PlanInput{}, err
	}

	var input PlanInput
	mapstructure.Decode(inputJson, &input)

	return input, nil
}

// GenerateScheduleVariants is the batch entry point: it splits the plan
// into locked sessions and open course pools, applies the eligibility
// options, and runs the exhaustive search. Open courses that end up with
// no eligible sessions are dropped from the pool set (matching the
// interactive behavior of showing variants only for schedulable courses).
func GenerateScheduleVariants(plan PlanInput, options GenerationOptions) []Variant {
	locked, open := splitPlan(plan, options)
	variants := NewGenerator().Generate(locked, open)
	attachCourseMetadata(variants, plan.Scheduled)
	return variants
}

func splitPlan(plan PlanInput, options GenerationOptions) (locked []Session, open []CoursePool) {
	openCodes := make(map[string]bool)
	for _, course := range plan.Scheduled {
		if len(course.Sessions) == 0 {
			openCodes[course.CourseCode] = true
			continue
		}
		for _, raw := range course.Sessions {
			locked = append(locked, NormalizeSession(raw, course.CourseCode))
		}
	}

	for _, course := range plan.Catalog {
		if !openCodes[course.CourseCode] {
			continue
		}
		eligible := FilterSessionsByOptions(course.Sessions, options)
		if len(eligible) == 0 {
			continue
		}
		sessions := lo.Map(eligible, func(raw RawSession, _ int) Session {
			return NormalizeSession(raw, course.CourseCode)
		})
		pool := NewCoursePool(course.CourseCode, sessions)
		pool.CourseTitle = course.CourseTitle
		pool.CourseCredit = coerceString(course.CourseCredit)
		open = append(open, pool)
	}

	return locked, open
}

// attachCourseMetadata back-fills title and credit on locked course
// selections, which the engine cannot know from bare sessions.
func attachCourseMetadata(variants []Variant, scheduled []RawCourse) {
	byCode := lo.KeyBy(scheduled, func(course RawCourse) string { return course.CourseCode })
	for _, variant := range variants {
		for i, selection := range variant.Courses {
			if selection.CourseTitle != "" {
				continue
			}
			if course, ok := byCode[selection.CourseCode]; ok {
				variant.Courses[i].CourseTitle = course.CourseTitle
				variant.Courses[i].CourseCredit = coerceString(course.CourseCredit)
			}
		}
	}
}
