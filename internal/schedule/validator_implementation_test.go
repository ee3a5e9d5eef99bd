package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAdd(t *testing.T) {
	validator := NewValidator()

	primaryA := testSession("1", "A", "CSE 142", RawMeeting{Days: "MWF", Time: "9:00 AM - 9:50 AM"})
	secondaryAA := testSession("2", "AA", "CSE 142", RawMeeting{Days: "T", Time: "9:00 AM - 9:50 AM"})

	t.Run("Accepts into an empty schedule", func(t *testing.T) {
		verdict := validator.CanAdd(primaryA, nil, nil)
		assert.True(t, verdict.OK)
	})

	t.Run("Rejects a second primary for the course", func(t *testing.T) {
		primaryB := testSession("3", "B", "CSE 142", RawMeeting{Days: "MWF", Time: "11:00 AM - 11:50 AM"})

		verdict := validator.CanAdd(primaryB, []Session{primaryA}, []Session{primaryA})
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonPrimaryExists, verdict.Reason)
	})

	t.Run("Rejects a second secondary for the course", func(t *testing.T) {
		committed := []Session{primaryA, secondaryAA}
		secondaryAB := testSession("4", "AB", "CSE 142", RawMeeting{Days: "Th", Time: "9:00 AM - 9:50 AM"})

		verdict := validator.CanAdd(secondaryAB, committed, committed)
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonSecondaryExists, verdict.Reason)
	})

	t.Run("Rejects a secondary whose letter does not match the primary", func(t *testing.T) {
		secondaryBA := testSession("4", "BA", "CSE 142", RawMeeting{Days: "Th", Time: "9:00 AM - 9:50 AM"})

		verdict := validator.CanAdd(secondaryBA, []Session{primaryA}, []Session{primaryA})
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonSecondaryMismatch, verdict.Reason)
	})

	t.Run("Accepts a secondary matching the committed primary", func(t *testing.T) {
		verdict := validator.CanAdd(secondaryAA, []Session{primaryA}, []Session{primaryA})
		assert.True(t, verdict.OK)
	})

	t.Run("Accepts a secondary when no primary is committed yet", func(t *testing.T) {
		verdict := validator.CanAdd(secondaryAA, nil, nil)
		assert.True(t, verdict.OK)
	})

	t.Run("Rejects on time conflict across courses", func(t *testing.T) {
		clashing := testSession("5", "B", "MATH 124", RawMeeting{Days: "WF", Time: "9:30 AM - 10:20 AM"})

		verdict := validator.CanAdd(clashing, nil, []Session{primaryA})
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonTimeConflict, verdict.Reason)
	})

	t.Run("Pairing rules are checked before time", func(t *testing.T) {
		// Conflicts with primaryA in time AND violates the pairing rule;
		// the pairing rejection wins.
		primaryClash := testSession("6", "B", "CSE 142", RawMeeting{Days: "MWF", Time: "9:00 AM - 9:50 AM"})

		verdict := validator.CanAdd(primaryClash, []Session{primaryA}, []Session{primaryA})
		assert.Equal(t, ReasonPrimaryExists, verdict.Reason)
	})

	t.Run("Other-kind sessions skip pairing but not time checks", func(t *testing.T) {
		lab := testSession("7", "101", "CHEM 110", RawMeeting{Days: "MWF", Time: "9:00 AM - 9:50 AM"})

		verdict := validator.CanAdd(lab, nil, []Session{primaryA})
		assert.False(t, verdict.OK)
		assert.Equal(t, ReasonTimeConflict, verdict.Reason)

		clear := testSession("8", "101", "CHEM 110", RawMeeting{Days: "MWF", Time: "1:00 PM - 1:50 PM"})
		assert.True(t, validator.CanAdd(clear, nil, []Session{primaryA}).OK)
	})
}
