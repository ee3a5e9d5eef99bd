package schedule

import "github.com/samber/lo"

// HasTimeConflict reports whether any meeting of the candidate session
// overlaps any meeting of any committed session. The check is symmetric
// and ignores course identity entirely; sessions without schedulable
// meetings never conflict.
func HasTimeConflict(candidate Session, committed []Session) bool {
	return lo.SomeBy(candidate.Meetings, func(meeting WeeklyMeeting) bool {
		if !meeting.Schedulable() {
			return false
		}
		return lo.SomeBy(committed, func(other Session) bool {
			return lo.SomeBy(other.Meetings, func(otherMeeting WeeklyMeeting) bool {
				return Overlaps(meeting, otherMeeting)
			})
		})
	})
}
