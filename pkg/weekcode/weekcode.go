// Package weekcode assigns production week codes to catalogued records and
// derives the per-week production schedule belonging to the assignment.
package weekcode

import (
	"fmt"
	"strings"
	"time"
)

// WeekNumber identifies a production week within a week-based year.
type WeekNumber struct {
	Week int
	Year int
}

// String returns the zero-padded year+week form used as week-code suffix,
// e.g. "202344".
func (w WeekNumber) String() string {
	return fmt.Sprintf("%04d%02d", w.Year, w.Week)
}

// WeekDescription is the production schedule of a single week. All dates are
// optional; a nil ShiftDay together with NoProduction marks a week that is
// fully suppressed for scheduling (Easter week or a degenerate Monday
// cut-over).
type WeekDescription struct {
	WeekCodeShort string
	WeekCodeFirst *time.Time
	WeekCodeLast  *time.Time
	ShiftDay      *time.Time
	BookCart      *time.Time
	Proof         *time.Time
	Bkm           *time.Time
	ProofFrom     *time.Time
	ProofTo       *time.Time
	Publish       *time.Time
	NoProduction  bool
}

// WeekCodeResult is the outcome of a single week-code resolution.
type WeekCodeResult struct {
	WeekNumber    int
	Year          int
	CatalogueCode string
	WeekCode      string
	ResolvedDate  time.Time
	Description   WeekDescription
}

// weekStartOf maps a locale tag to the first day of the week used for week
// numbering. English locales number weeks from Sunday; everything else is
// ISO-8601 Monday-start.
func weekStartOf(locale string) time.Weekday {
	tag := strings.ToLower(strings.ReplaceAll(locale, "_", "-"))
	if tag == "en" || strings.HasPrefix(tag, "en-") {
		return time.Sunday
	}
	return time.Monday
}

// weekNumberOf returns the week number and week-based year for the week
// containing date, given the desired week start day. The week start day can
// shift the ISO week into the previous calendar week when it is earlier than
// Monday.
//
// End-of-year overflow: when the ISO computation already rolls the last days
// of December into week 1 of the next year, the date is reported as week 53
// of its own year instead. January dates that ISO-belong to the previous
// week-year come out of ISOWeek correctly and need no correction.
func weekNumberOf(date time.Time, weekStartDay time.Weekday) WeekNumber {
	delta := (int(date.Weekday()) - int(weekStartDay) + 7) % 7
	startOfWeek := date.AddDate(0, 0, -delta)

	year, week := startOfWeek.ISOWeek()
	if week == 1 && date.Month() == time.December {
		week = 53
		year--
	}
	return WeekNumber{Week: week, Year: year}
}

// isoDay returns the ISO-8601 day-of-week number, Monday=1 .. Sunday=7.
func isoDay(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// mondayOf returns the Monday of the ISO week containing t, at midnight.
func mondayOf(t time.Time) time.Time {
	return midnight(t).AddDate(0, 0, 1-isoDay(t.Weekday()))
}

// midnight normalizes a timestamp to its calendar date in UTC, so that all
// week arithmetic is insensitive to time-of-day and zone offsets.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekContains reports whether day falls within the week starting at monday.
func weekContains(monday, day time.Time) bool {
	d := midnight(day)
	return !d.Before(monday) && d.Before(monday.AddDate(0, 0, 7))
}
