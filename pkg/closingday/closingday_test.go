package closingday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestIsClosingDay(t *testing.T) {
	tests := []struct {
		name           string
		date           time.Time
		allowEndOfYear bool
		want           bool
	}{
		{"regular Thursday", date(2019, time.October, 10), false, false},
		{"Saturday", date(2019, time.October, 12), false, true},
		{"Sunday", date(2019, time.October, 13), false, true},

		{"labour day", date(2019, time.May, 1), false, true},
		{"day after labour day, not a Friday", date(2019, time.May, 2), false, false},
		{"day after labour day on a Friday", date(2025, time.May, 2), false, true},

		{"constitution day", date(2019, time.June, 5), false, true},
		{"day after constitution day on a Friday", date(2025, time.June, 6), false, true},

		{"Christmas eve", date(2019, time.December, 24), true, true},
		{"Christmas day", date(2019, time.December, 25), true, true},
		{"second Christmas day", date(2019, time.December, 26), true, true},
		{"December 27th on a Friday", date(2019, time.December, 27), true, true},
		{"December 27th on a regular day", date(2023, time.December, 27), true, false},

		{"week 52 without end-of-year production", date(2019, time.December, 23), false, true},
		{"week 1 without end-of-year production", date(2019, time.December, 30), false, true},
		{"December 30th with end-of-year production", date(2019, time.December, 30), true, false},
		{"New Year's Eve with end-of-year production", date(2019, time.December, 31), true, true},

		{"New Year's day", date(2019, time.January, 1), true, true},
		{"January 2nd on a Friday", date(2026, time.January, 2), true, true},
		{"January 2nd on a regular day", date(2019, time.January, 2), true, false},

		{"Wednesday before Maundy Thursday", date(2019, time.April, 17), false, false},
		{"Maundy Thursday", date(2019, time.April, 18), false, true},
		{"Good Friday", date(2019, time.April, 19), false, true},
		{"Easter Sunday", date(2019, time.April, 21), false, true},
		{"Easter Monday", date(2019, time.April, 22), false, true},
		{"Tuesday after Easter Monday", date(2019, time.April, 23), false, false},

		{"Whit Monday", date(2019, time.June, 10), false, true},
		{"Ascension day", date(2019, time.May, 30), false, true},
		{"Friday after Ascension day", date(2019, time.May, 31), false, true},

		{"Store Bededag", date(2019, time.May, 17), false, true},
		{"Store Bededag after abolition", date(2024, time.April, 26), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsClosingDay(tt.date, tt.allowEndOfYear))
		})
	}
}

func TestIsClosingDayOutsideEasterTable(t *testing.T) {
	// Movable holidays silently evaluate to "not closing" outside the table,
	// fixed holidays keep working.
	assert.False(t, IsClosingDay(date(2100, time.April, 1), true))
	assert.True(t, IsClosingDay(date(2100, time.May, 1), true))
	assert.True(t, IsClosingDay(date(2100, time.December, 25), true))
}

func TestIsEasterWeek(t *testing.T) {
	assert.False(t, IsEasterWeek(date(2019, time.April, 17)))
	assert.True(t, IsEasterWeek(date(2019, time.April, 18)))
	assert.True(t, IsEasterWeek(date(2019, time.April, 22)))
	assert.False(t, IsEasterWeek(date(2019, time.April, 23)))

	assert.True(t, IsEasterWeek(date(2023, time.April, 6)))
	assert.False(t, IsEasterWeek(date(2023, time.April, 11)))

	assert.False(t, IsEasterWeek(date(2100, time.April, 10)))
}
