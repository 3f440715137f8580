package weekcode

import (
	"testing"
	"time"

	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDescription(t *testing.T) {
	friday := time.Friday

	t.Run("week with a Thursday cut-over before Easter", func(t *testing.T) {
		cfg := catalogue.Config{AddWeeks: 1, ShiftDay: &friday}
		d, err := buildDescription(cfg, date(2023, time.March, 27), "202313")
		require.NoError(t, err)

		assert.Equal(t, "202313", d.WeekCodeShort)
		assert.False(t, d.NoProduction)
		require.NotNil(t, d.WeekCodeFirst)
		assert.Equal(t, date(2023, time.March, 27), *d.WeekCodeFirst)
		require.NotNil(t, d.ShiftDay)
		assert.Equal(t, date(2023, time.March, 30), *d.ShiftDay)
		require.NotNil(t, d.WeekCodeLast)
		assert.Equal(t, date(2023, time.March, 29), *d.WeekCodeLast)
		assert.Equal(t, date(2023, time.March, 27), *d.BookCart)
		assert.Equal(t, date(2023, time.March, 28), *d.Proof)
		assert.Equal(t, date(2023, time.March, 29), *d.Bkm)
		assert.Equal(t, date(2023, time.March, 31), *d.Publish)
	})

	t.Run("Easter week has no production", func(t *testing.T) {
		cfg := catalogue.Config{AddWeeks: 1, ShiftDay: &friday}
		d, err := buildDescription(cfg, date(2023, time.April, 5), "202314")
		require.NoError(t, err)

		assert.True(t, d.NoProduction)
		assert.Nil(t, d.ShiftDay)
		assert.Nil(t, d.WeekCodeLast)
		require.NotNil(t, d.WeekCodeFirst)
		assert.Equal(t, date(2023, time.April, 3), *d.WeekCodeFirst)
	})

	t.Run("no cut-over configured defaults to Sunday", func(t *testing.T) {
		cfg := catalogue.Config{AddWeeks: 1}
		d, err := buildDescription(cfg, date(2023, time.March, 29), "202313")
		require.NoError(t, err)

		assert.False(t, d.NoProduction)
		require.NotNil(t, d.ShiftDay)
		assert.Equal(t, date(2023, time.April, 2), *d.ShiftDay)
		require.NotNil(t, d.WeekCodeLast)
		assert.Equal(t, date(2023, time.April, 1), *d.WeekCodeLast)
	})

	t.Run("cut-over pushed to Monday means no production window", func(t *testing.T) {
		cfg := catalogue.Config{AddWeeks: 1, ShiftDay: &friday}
		d, err := buildDescription(cfg, date(2019, time.December, 23), "201952")
		require.NoError(t, err)

		assert.True(t, d.NoProduction)
		require.NotNil(t, d.ShiftDay)
		assert.Equal(t, date(2019, time.December, 23), *d.ShiftDay)
	})

	t.Run("first day skips closing days", func(t *testing.T) {
		// Easter Monday 2019 is April 22nd.
		cfg := catalogue.Config{AddWeeks: 1, ShiftDay: &friday}
		d, err := buildDescription(cfg, date(2019, time.April, 24), "201917")
		require.NoError(t, err)

		require.NotNil(t, d.WeekCodeFirst)
		assert.Equal(t, date(2019, time.April, 23), *d.WeekCodeFirst)
	})

	t.Run("year outside the Easter table fails", func(t *testing.T) {
		cfg := catalogue.Config{AddWeeks: 1, ShiftDay: &friday}
		_, err := buildDescription(cfg, date(2100, time.March, 3), "210010")
		assert.Error(t, err)
	})
}
