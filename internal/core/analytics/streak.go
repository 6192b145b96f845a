// Package analytics derives statistics from a user's mood ledger.
//
// Every function expects entries ordered newest first, as returned by
// domain.MoodEntryRepository.ListByUserID, and takes the reference time and
// time zone explicitly so results do not depend on the host clock.
package analytics

import (
	"time"

	"github.com/comitanigiacomo/mindmate-engine/internal/core/domain"
)

// Day truncates t to midnight of its calendar day in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DaysBetween counts calendar days from earlier to later. Both values are
// compared on their own wall-clock dates, so DST shifts never produce 23h or 25h days.
func DaysBetween(later, earlier time.Time) int {
	ly, lm, ld := later.Date()
	ey, em, ed := earlier.Date()
	l := time.Date(ly, lm, ld, 0, 0, 0, 0, time.UTC)
	e := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	return int(l.Sub(e).Hours() / 24)
}

// CurrentStreak counts consecutive check-in days ending today or yesterday.
// Several entries on one day count once; future-dated entries are ignored.
func CurrentStreak(entries []*domain.MoodEntry, now time.Time, loc *time.Location) int {
	cursor := Day(now, loc)
	streak := 0
	seen := make(map[time.Time]bool)

	for _, e := range entries {
		day := Day(e.RecordedAt, loc)
		if seen[day] {
			continue
		}

		gap := DaysBetween(cursor, day)
		if gap < 0 {
			continue
		}
		if gap > 1 {
			break
		}

		seen[day] = true
		streak++
		cursor = day
	}

	return streak
}
