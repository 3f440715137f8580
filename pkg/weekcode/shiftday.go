package weekcode

import (
	"fmt"
	"time"

	"github.com/bibdata/weekresolver/pkg/closingday"
	"github.com/bibdata/weekresolver/pkg/easter"
)

// adjustShiftDay computes the effective cut-over day for the ISO week
// containing date. A nil result with a nil error means the whole week is
// suppressed (Easter week). Years without an Easter table entry are a hard
// error here: the cut-over cannot be placed without a known Easter date.
func adjustShiftDay(date time.Time, shiftDay time.Weekday, allowEndOfYear bool) (*time.Weekday, error) {
	monday := mondayOf(date)

	easterSunday, err := easter.SundayOf(monday.Year())
	if err != nil {
		return nil, fmt.Errorf("cannot resolve shift day for %s: %w", monday.Format("2006-01-02"), err)
	}

	// Easter week has no cut-over at all.
	if weekContains(monday, easterSunday) {
		return nil, nil
	}

	// A Friday cut-over in Pentecost week is pulled back to Thursday.
	pentecost := easterSunday.AddDate(0, 0, 49)
	if shiftDay == time.Friday && weekContains(monday, pentecost) {
		thursday := time.Thursday
		return &thursday, nil
	}

	// A Friday cut-over just before Easter week is pulled back to Thursday,
	// so the shifted records do not target the suppressed week.
	if shiftDay == time.Friday && weekContains(monday.AddDate(0, 0, 7), easterSunday) {
		thursday := time.Thursday
		return &thursday, nil
	}

	// Walk the cut-over date backwards over closing days. Monday is the floor.
	shiftDate := monday.AddDate(0, 0, isoDay(shiftDay)-1)
	for closingday.IsClosingDay(shiftDate, allowEndOfYear) && shiftDate.Weekday() != time.Monday {
		shiftDate = shiftDate.AddDate(0, 0, -1)
	}

	day := shiftDate.Weekday()
	return &day, nil
}
