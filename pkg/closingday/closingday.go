// Package closingday decides whether a calendar date is a Danish non-production
// day: weekends, fixed public holidays with their pinched Fridays, the
// end-of-year weeks, and the Easter-anchored movable holidays.
package closingday

import (
	"time"

	"github.com/bibdata/weekresolver/pkg/easter"
	log "github.com/sirupsen/logrus"
)

// rule is a single named closing-day predicate. Rules are independent; a date
// is a closing day as soon as any rule matches.
type rule struct {
	name    string
	matches func(d time.Time, allowEndOfYearWeeks bool) bool
}

// The movable rules resolve Easter through the soft table lookup. A year
// without a table entry makes them evaluate to "not closing" with a warning,
// keeping non-Easter-sensitive catalogue codes usable outside the table range.
var rules = []rule{
	{name: "weekend", matches: func(d time.Time, _ bool) bool {
		return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
	}},
	{name: "labour day", matches: func(d time.Time, _ bool) bool {
		if d.Month() != time.May {
			return false
		}
		return d.Day() == 1 || (d.Day() == 2 && d.Weekday() == time.Friday)
	}},
	{name: "constitution day", matches: func(d time.Time, _ bool) bool {
		if d.Month() != time.June {
			return false
		}
		return d.Day() == 5 || (d.Day() == 6 && d.Weekday() == time.Friday)
	}},
	{name: "christmas", matches: func(d time.Time, _ bool) bool {
		if d.Month() != time.December {
			return false
		}
		return d.Day() == 24 || d.Day() == 25 || d.Day() == 26 ||
			(d.Day() == 27 && d.Weekday() == time.Friday)
	}},
	{name: "end of year", matches: func(d time.Time, allowEndOfYearWeeks bool) bool {
		if allowEndOfYearWeeks {
			return d.Month() == time.December && d.Day() == 31
		}
		_, week := d.ISOWeek()
		return week == 52 || week == 53 || week == 1
	}},
	{name: "new year", matches: func(d time.Time, _ bool) bool {
		if d.Month() != time.January {
			return false
		}
		return d.Day() == 1 || (d.Day() == 2 && d.Weekday() == time.Friday)
	}},
	{name: "easter week", matches: func(d time.Time, _ bool) bool {
		return IsEasterWeek(d)
	}},
	{name: "whit monday", matches: func(d time.Time, _ bool) bool {
		sunday, ok := lookupEaster(d.Year())
		if !ok {
			return false
		}
		// Pentecost is the first Sunday on/after Easter Sunday + 7 weeks,
		// which is Easter Sunday + 49 days.
		return sameDay(d, sunday.AddDate(0, 0, 50))
	}},
	{name: "ascension day", matches: func(d time.Time, _ bool) bool {
		sunday, ok := lookupEaster(d.Year())
		if !ok {
			return false
		}
		// Maundy Thursday + 6 weeks, a Thursday. The Friday after is pinched.
		ascension := sunday.AddDate(0, 0, 39)
		return sameDay(d, ascension) || sameDay(d, ascension.AddDate(0, 0, 1))
	}},
	// Store Bededag was abolished as a public holiday from 2024, but the rule
	// stays active for all years: its pinched-Friday shadow still feeds the
	// shift-day walk for some catalogue codes.
	{name: "store bededag", matches: func(d time.Time, _ bool) bool {
		sunday, ok := lookupEaster(d.Year())
		if !ok {
			return false
		}
		bededag := sunday.AddDate(0, 0, 26)
		if sameDay(d, bededag) {
			return true
		}
		return bededag.Weekday() == time.Friday && sameDay(d, bededag.AddDate(0, 0, 1))
	}},
}

// IsClosingDay reports whether the given date is a non-production day.
// With allowEndOfYearWeeks set, ISO weeks 52/53 and week 1 count as regular
// working weeks and only New Year's Eve closes the year.
func IsClosingDay(date time.Time, allowEndOfYearWeeks bool) bool {
	d := midnight(date)
	for _, r := range rules {
		if r.matches(d, allowEndOfYearWeeks) {
			log.Tracef("%s is a closing day (%s)", d.Format("2006-01-02"), r.name)
			return true
		}
	}
	return false
}

// IsEasterWeek reports whether the date falls on Maundy Thursday through
// Easter Monday. The bounds are exclusive on both sides of the raw offsets:
// after Easter Sunday - 4 days and before Easter Sunday + 2 days.
func IsEasterWeek(date time.Time) bool {
	d := midnight(date)
	sunday, ok := lookupEaster(d.Year())
	if !ok {
		return false
	}
	return d.After(sunday.AddDate(0, 0, -4)) && d.Before(sunday.AddDate(0, 0, 2))
}

func lookupEaster(year int) (time.Time, bool) {
	sunday, ok := easter.Lookup(year)
	if !ok {
		log.Warnf("no Easter Sunday for year %d, movable holidays are not checked", year)
	}
	return sunday, ok
}

// midnight normalizes a timestamp to its calendar date, so holiday checks are
// insensitive to the time-of-day and zone offset of the input.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
