package schedule

import (
	"regexp"
	"strconv"
	"strings"
)

// Weekday is a compact day token as it appears in catalog meeting data
// ("MWF", "TTh", ...). Thursday, Saturday and Sunday are two-character
// tokens; every other day is a single letter.
type Weekday string

const (
	Monday    Weekday = "M"
	Tuesday   Weekday = "T"
	Wednesday Weekday = "W"
	Thursday  Weekday = "Th"
	Friday    Weekday = "F"
	Saturday  Weekday = "Sa"
	Sunday    Weekday = "Su"
)

// WeeklyMeeting is one recurring time block of a session. Days and the
// minute range are parsed once during normalization; the raw strings are
// kept for display. A meeting whose time range could not be parsed or
// that names no days carries no scheduling constraint.
type WeeklyMeeting struct {
	Days        []Weekday
	StartMinute int
	EndMinute   int

	RawDays  string
	RawTime  string
	Building string
	Room     string
	Campus   string
}

// Schedulable reports whether the meeting constrains the timetable at all.
func (m WeeklyMeeting) Schedulable() bool {
	return len(m.Days) > 0 && m.StartMinute < m.EndMinute
}

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(AM|PM)`)

// ParseTimeRange parses a "H[:MM] AM/PM - H[:MM] AM/PM" range into minutes
// since midnight. It returns ok=false for anything it cannot read ("TBA",
// empty strings, missing halves) and for degenerate ranges where the end
// does not come after the start; callers must treat that as "no
// scheduling constraint", never as an always-conflicting wildcard.
func ParseTimeRange(text string) (startMinute, endMinute int, ok bool) {
	parts := strings.SplitN(text, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}

	start, ok := parseClock(parts[0])
	if !ok {
		return 0, 0, false
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return 0, 0, false
	}

	if start >= end {
		return 0, 0, false
	}
	return start, end, true
}

func parseClock(text string) (int, bool) {
	match := clockPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}
	minute := 0
	if match[2] != "" {
		minute, err = strconv.Atoi(match[2])
		if err != nil || minute > 59 {
			return 0, false
		}
	}

	meridiem := strings.ToUpper(match[3])
	if meridiem == "PM" && hour != 12 {
		hour += 12
	} else if meridiem == "AM" && hour == 12 {
		hour = 0
	}
	return hour*60 + minute, true
}

// ExpandDays decomposes a packed day string ("MWF", "TTh", "MTWThF") into
// individual weekday tokens. "Th" must be read as Thursday rather than a
// Tuesday followed by a stray letter; "Sa" and "Su" get the same lookahead
// treatment, and a bare trailing "S" reads as Saturday. Characters that do
// not start a day token are skipped.
func ExpandDays(text string) []Weekday {
	days := make([]Weekday, 0, 5)
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case 'M', 'm':
			days = append(days, Monday)
		case 'W', 'w':
			days = append(days, Wednesday)
		case 'F', 'f':
			days = append(days, Friday)
		case 'T', 't':
			if i+1 < len(runes) && (runes[i+1] == 'h' || runes[i+1] == 'H') {
				days = append(days, Thursday)
				i++
			} else {
				days = append(days, Tuesday)
			}
		case 'S', 's':
			if i+1 < len(runes) && (runes[i+1] == 'u' || runes[i+1] == 'U') {
				days = append(days, Sunday)
				i++
			} else {
				if i+1 < len(runes) && (runes[i+1] == 'a' || runes[i+1] == 'A') {
					i++
				}
				days = append(days, Saturday)
			}
		}
	}
	return days
}

// Overlaps reports whether two meetings ever coincide: they must share at
// least one weekday and their [start, end) minute ranges must intersect.
// The interval test is half-open, so a meeting ending at 9:50 never
// overlaps one starting at 9:50. Meetings that are not schedulable never
// overlap anything.
func Overlaps(a, b WeeklyMeeting) bool {
	if !a.Schedulable() || !b.Schedulable() {
		return false
	}

	shared := false
	for _, day := range a.Days {
		for _, other := range b.Days {
			if day == other {
				shared = true
				break
			}
		}
		if shared {
			break
		}
	}
	if !shared {
		return false
	}

	return a.StartMinute < b.EndMinute && a.EndMinute > b.StartMinute
}
