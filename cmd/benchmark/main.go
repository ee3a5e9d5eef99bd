package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/huskyplan/scheduler/internal/schedule"
	"github.com/samber/lo"
)

// Measures how variant enumeration scales with the number of open courses
// and sections per course. Sections are laid out without overlaps so the
// search degenerates to its worst case: every branch survives.

var dayPatterns = []string{"MWF", "TTh", "MW", "F", "SaSu"}

func main() {
	maxCoursesPtr := flag.Int("courses", 5, "Maximum number of open courses to sweep up to")
	maxPrimariesPtr := flag.Int("primaries", 4, "Maximum number of primary sections per course to sweep up to")
	outFilePtr := flag.String("out", "benchmark.csv", "Path to the CSV results file")
	flag.Parse()

	records := [][]string{{"courses", "primariesPerCourse", "variants", "durationMs"}}

	for courses := 1; courses <= *maxCoursesPtr; courses++ {
		for primaries := 1; primaries <= *maxPrimariesPtr; primaries++ {
			pools := syntheticPools(courses, primaries)

			start := time.Now()
			variants := schedule.NewGenerator().Generate(nil, pools)
			elapsed := time.Since(start)

			records = append(records, []string{
				fmt.Sprint(courses),
				fmt.Sprint(primaries),
				fmt.Sprint(len(variants)),
				fmt.Sprint(elapsed.Milliseconds()),
			})
			log.Printf("courses=%v primaries=%v variants=%v elapsed=%v", courses, primaries, len(variants), elapsed)
		}
	}

	file, err := os.Create(*outFilePtr)
	if err != nil {
		log.Fatalf("cannot create results file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

// syntheticPools builds non-overlapping course pools: course i occupies
// hour slot i on a rotating day pattern, and its primary sections differ
// only by code, so every cross-course combination is conflict-free.
func syntheticPools(courses, primaries int) []schedule.CoursePool {
	return lo.Map(lo.Range(courses), func(course int, _ int) schedule.CoursePool {
		days := dayPatterns[course%len(dayPatterns)]
		hour := 8 + course%10
		meeting := schedule.RawMeeting{
			Days: days,
			Time: fmt.Sprintf("%d:00 AM - %d:50 AM", hour, hour),
		}

		sessions := lo.Map(lo.Range(primaries), func(section int, _ int) schedule.Session {
			return schedule.NormalizeSession(schedule.RawSession{
				Id:                 fmt.Sprintf("%d-%d", course, section),
				Code:               string(rune('A' + section)),
				MeetingDetailsList: []schedule.RawMeeting{meeting},
			}, fmt.Sprintf("SYN %d", course))
		})

		return schedule.NewCoursePool(fmt.Sprintf("SYN %d", course), sessions)
	})
}
