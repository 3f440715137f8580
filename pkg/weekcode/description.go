package weekcode

import (
	"time"

	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/bibdata/weekresolver/pkg/closingday"
)

// buildDescription derives the production schedule for the week containing
// date. The schedule is anchored on the Monday of that week: book cart on
// Monday, proofing on Tuesday, the editorial day on Wednesday, publication on
// Friday. The last day covered by the week code is the day before the
// effective cut-over.
func buildDescription(cfg catalogue.Config, date time.Time, weekCodeShort string) (WeekDescription, error) {
	monday := mondayOf(date)
	description := WeekDescription{WeekCodeShort: weekCodeShort}

	first := monday
	for closingday.IsClosingDay(first, cfg.AllowEndOfYear) {
		first = first.AddDate(0, 0, 1)
	}
	description.WeekCodeFirst = &first

	var shiftDate *time.Time
	if cfg.ShiftDay != nil {
		day, err := adjustShiftDay(monday, *cfg.ShiftDay, cfg.AllowEndOfYear)
		if err != nil {
			return WeekDescription{}, err
		}
		if day == nil {
			// Easter week: the whole week is suppressed for scheduling.
			description.NoProduction = true
		} else {
			d := monday.AddDate(0, 0, isoDay(*day)-1)
			shiftDate = &d
		}
	} else {
		// No configured cut-over: the cycle runs through Sunday.
		d := monday.AddDate(0, 0, 6)
		shiftDate = &d
	}

	if shiftDate != nil {
		description.ShiftDay = shiftDate
		last := shiftDate.AddDate(0, 0, -1)
		description.WeekCodeLast = &last
		if shiftDate.Weekday() == time.Monday {
			// A Monday cut-over leaves a zero-length production window.
			description.NoProduction = true
		}
	}

	bookCart := monday
	proof := monday.AddDate(0, 0, 1)
	bkm := monday.AddDate(0, 0, 2)
	publish := monday.AddDate(0, 0, 4)
	description.BookCart = &bookCart
	description.Proof = &proof
	description.ProofFrom = &proof
	description.ProofTo = &proof
	description.Bkm = &bkm
	description.Publish = &publish

	return description, nil
}
