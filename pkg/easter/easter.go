// Package easter holds the precomputed Easter Sunday table that anchors all
// movable Danish holidays (Maundy Thursday through Easter Monday, Ascension,
// Pentecost, Store Bededag).
package easter

import (
	"fmt"
	"time"
)

// ErrYearNotSupported is returned by SundayOf for years outside the table.
var ErrYearNotSupported = fmt.Errorf("year is outside the supported Easter table range")

// MinYear and MaxYear bound the precomputed table. Week codes whose rules
// depend on Easter cannot be resolved outside this range.
const (
	MinYear = 2016
	MaxYear = 2040
)

// sundays maps year to the month/day of Easter Sunday (Gregorian computus).
// Exactly one entry per year, never mutated after load.
var sundays = map[int]time.Time{
	2016: date(2016, time.March, 27),
	2017: date(2017, time.April, 16),
	2018: date(2018, time.April, 1),
	2019: date(2019, time.April, 21),
	2020: date(2020, time.April, 12),
	2021: date(2021, time.April, 4),
	2022: date(2022, time.April, 17),
	2023: date(2023, time.April, 9),
	2024: date(2024, time.March, 31),
	2025: date(2025, time.April, 20),
	2026: date(2026, time.April, 5),
	2027: date(2027, time.March, 28),
	2028: date(2028, time.April, 16),
	2029: date(2029, time.April, 1),
	2030: date(2030, time.April, 21),
	2031: date(2031, time.April, 13),
	2032: date(2032, time.March, 28),
	2033: date(2033, time.April, 17),
	2034: date(2034, time.April, 9),
	2035: date(2035, time.March, 25),
	2036: date(2036, time.April, 13),
	2037: date(2037, time.April, 5),
	2038: date(2038, time.April, 25),
	2039: date(2039, time.April, 10),
	2040: date(2040, time.April, 1),
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SundayOf returns Easter Sunday for the given year. Years outside the table
// are a hard error: shift-day and week-description math cannot proceed
// without a known Easter date.
func SundayOf(year int) (time.Time, error) {
	sunday, ok := sundays[year]
	if !ok {
		return time.Time{}, fmt.Errorf("no Easter Sunday for year %d: %w", year, ErrYearNotSupported)
	}
	return sunday, nil
}

// Lookup returns Easter Sunday for the given year, reporting a miss instead
// of failing. Holiday checks use this soft form so that codes without Easter
// sensitivity keep working far outside the table range.
func Lookup(year int) (time.Time, bool) {
	sunday, ok := sundays[year]
	return sunday, ok
}
