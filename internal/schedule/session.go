package schedule

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// RawMeeting mirrors one entry of a catalog payload's meeting list. All
// fields are optional free-form strings.
type RawMeeting struct {
	Days     string
	Time     string
	Building string
	Room     string
	Campus   string
}

// RawSession is the loose shape sessions arrive in from the catalog layer.
// Identifier-ish fields are `any` because upstream payloads carry them as
// strings or numbers interchangeably.
type RawSession struct {
	Id                 any
	ActivityId         any `mapstructure:"activityId"`
	Code               any
	Type               string
	Instructor         string
	RegistrationCode   any    `mapstructure:"registrationCode"`
	StateKey           string `mapstructure:"stateKey"`
	EnrollStatus       string `mapstructure:"enrollStatus"`
	EnrollCount        any    `mapstructure:"enrollCount"`
	EnrollMaximum      any    `mapstructure:"enrollMaximum"`
	AddCodeRequired    bool   `mapstructure:"addCodeRequired"`
	MeetingDetailsList []RawMeeting
}

// Session is the canonical section record every other component operates
// on. Instances are built by NormalizeSession and never mutated afterwards.
type Session struct {
	Id               string
	Code             string
	CourseCode       string
	Type             string
	Instructor       string
	RegistrationCode string
	Meetings         []WeeklyMeeting
}

// SessionKind partitions sessions by the alphabetic part of their code.
type SessionKind int

const (
	// KindOther covers codes that are neither one nor two letters (purely
	// numeric lab codes and the like). They are outside the pairing rules
	// but still take part in time-conflict checks.
	KindOther SessionKind = iota
	KindPrimary
	KindSecondary
)

// NormalizeSession converts a raw catalog record into a Session. The id
// falls back through activity id and registration code before minting a
// fresh token, so every normalized session is addressable. Each raw
// meeting is parsed independently; a session may legitimately have zero
// meetings (online/TBA sections).
func NormalizeSession(raw RawSession, courseCode string) Session {
	return Session{
		Id:               firstIdentifier(raw.Id, raw.ActivityId, raw.RegistrationCode),
		Code:             coerceString(raw.Code),
		CourseCode:       courseCode,
		Type:             raw.Type,
		Instructor:       raw.Instructor,
		RegistrationCode: coerceString(raw.RegistrationCode),
		Meetings: lo.Map(raw.MeetingDetailsList, func(m RawMeeting, _ int) WeeklyMeeting {
			return normalizeMeeting(m)
		}),
	}
}

func normalizeMeeting(raw RawMeeting) WeeklyMeeting {
	meeting := WeeklyMeeting{
		Days:     ExpandDays(raw.Days),
		RawDays:  raw.Days,
		RawTime:  raw.Time,
		Building: raw.Building,
		Room:     raw.Room,
		Campus:   raw.Campus,
	}
	if start, end, ok := ParseTimeRange(raw.Time); ok {
		meeting.StartMinute = start
		meeting.EndMinute = end
	}
	return meeting
}

func firstIdentifier(candidates ...any) string {
	for _, candidate := range candidates {
		if s := coerceString(candidate); s != "" {
			return s
		}
	}
	return uuid.NewString()
}

func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// json numbers decode as float64; registration codes are integral
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// LetterPart returns the alphabetic characters of the session code,
// uppercased ("AB" for "AB", "A" for "A1").
func (s Session) LetterPart() string {
	var builder strings.Builder
	for _, r := range s.Code {
		if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			builder.WriteRune(r)
		}
	}
	return strings.ToUpper(builder.String())
}

// Classify derives the pairing role of a session from its code: one letter
// makes a primary section, two letters a secondary tied to the primary
// sharing its first letter, anything else is outside the pairing rules.
func Classify(s Session) (letterPart string, kind SessionKind) {
	letterPart = s.LetterPart()
	switch len(letterPart) {
	case 1:
		kind = KindPrimary
	case 2:
		kind = KindSecondary
	default:
		kind = KindOther
	}
	return letterPart, kind
}
