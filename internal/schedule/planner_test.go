package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanner(t *testing.T) {
	lecture := RawSession{Id: "1", Code: "A", MeetingDetailsList: []RawMeeting{{Days: "MWF", Time: "9:00 AM - 9:50 AM"}}}
	quiz := RawSession{Id: "2", Code: "AA", MeetingDetailsList: []RawMeeting{{Days: "T", Time: "9:00 AM - 9:50 AM"}}}

	t.Run("Add and remove round-trip", func(t *testing.T) {
		planner := NewPlanner()

		assert.True(t, planner.Add(lecture, "CSE 142").OK)
		assert.True(t, planner.Has("1"))
		assert.Len(t, planner.Sessions(), 1)

		planner.Remove("1")
		assert.False(t, planner.Has("1"))
		assert.Empty(t, planner.Sessions())
	})

	t.Run("Rejections leave the schedule untouched", func(t *testing.T) {
		planner := NewPlanner()
		planner.Add(lecture, "CSE 142")

		other := RawSession{Id: "3", Code: "B", MeetingDetailsList: []RawMeeting{{Days: "W", Time: "9:30 AM - 10:20 AM"}}}
		verdict := planner.Add(other, "MATH 124")

		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonTimeConflict, verdict.Reason)
		assert.Len(t, planner.Sessions(), 1)
	})

	t.Run("CanAdd mirrors Add without mutating", func(t *testing.T) {
		planner := NewPlanner()
		planner.Add(lecture, "CSE 142")

		verdict := planner.CanAdd(quiz, "CSE 142")
		assert.True(t, verdict.OK)
		assert.Len(t, planner.Sessions(), 1)

		mismatched := RawSession{Id: "4", Code: "BA"}
		verdict = planner.CanAdd(mismatched, "CSE 142")
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonSecondaryMismatch, verdict.Reason)
	})

	t.Run("Toggle flips membership", func(t *testing.T) {
		planner := NewPlanner()

		added, verdict := planner.Toggle(lecture, "CSE 142")
		assert.True(t, added)
		assert.True(t, verdict.OK)

		added, verdict = planner.Toggle(lecture, "CSE 142")
		assert.False(t, added)
		assert.True(t, verdict.OK)
		assert.False(t, planner.Has("1"))
	})

	t.Run("Toggle surfaces the rejection reason", func(t *testing.T) {
		planner := NewPlanner()
		planner.Add(lecture, "CSE 142")

		duplicate := RawSession{Id: "5", Code: "B", MeetingDetailsList: []RawMeeting{{Days: "TTh", Time: "1:00 PM - 1:50 PM"}}}
		added, verdict := planner.Toggle(duplicate, "CSE 142")

		assert.False(t, added)
		assert.Equal(t, ReasonPrimaryExists, verdict.Reason)
	})

	t.Run("Clear empties everything", func(t *testing.T) {
		planner := NewPlanner()
		planner.Add(lecture, "CSE 142")
		planner.Add(quiz, "CSE 142")

		planner.Clear()
		assert.Empty(t, planner.Sessions())
	})

	t.Run("Sessions keeps insertion order", func(t *testing.T) {
		planner := NewPlanner()
		planner.Add(quiz, "CSE 142")
		planner.Add(lecture, "CSE 142")

		sessions := planner.Sessions()
		assert.Equal(t, "2", sessions[0].Id)
		assert.Equal(t, "1", sessions[1].Id)
	})
}
