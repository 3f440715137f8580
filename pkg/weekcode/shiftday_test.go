package weekcode

import (
	"testing"
	"time"

	"github.com/bibdata/weekresolver/pkg/easter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustShiftDay(t *testing.T) {
	friday := time.Friday

	t.Run("regular week keeps the configured day", func(t *testing.T) {
		day, err := adjustShiftDay(date(2019, time.October, 10), friday, false)
		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, time.Friday, *day)
	})

	t.Run("Easter week suppresses the cut-over", func(t *testing.T) {
		day, err := adjustShiftDay(date(2019, time.April, 22), friday, false)
		require.NoError(t, err)
		assert.Nil(t, day)
	})

	t.Run("Friday before Easter week moves to Thursday", func(t *testing.T) {
		day, err := adjustShiftDay(date(2023, time.March, 27), friday, false)
		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, time.Thursday, *day)
	})

	t.Run("Friday in Pentecost week moves to Thursday", func(t *testing.T) {
		// Pentecost 2019 is June 9th.
		day, err := adjustShiftDay(date(2019, time.June, 3), friday, false)
		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, time.Thursday, *day)
	})

	t.Run("cut-over walks back over closing days", func(t *testing.T) {
		// May 1st 2020 is a Friday.
		day, err := adjustShiftDay(date(2020, time.April, 27), friday, false)
		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, time.Thursday, *day)
	})

	t.Run("walk stops at the Monday floor", func(t *testing.T) {
		// Week 52 with end-of-year production disabled: every day closes.
		day, err := adjustShiftDay(date(2019, time.December, 23), friday, false)
		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, time.Monday, *day)
	})

	t.Run("non-Friday cut-over is not pulled before Easter week", func(t *testing.T) {
		wednesday := time.Wednesday
		day, err := adjustShiftDay(date(2023, time.March, 27), wednesday, false)
		require.NoError(t, err)
		require.NotNil(t, day)
		assert.Equal(t, time.Wednesday, *day)
	})

	t.Run("year outside the Easter table is a hard error", func(t *testing.T) {
		_, err := adjustShiftDay(date(2100, time.March, 1), friday, false)
		assert.ErrorIs(t, err, easter.ErrYearNotSupported)
	})
}
