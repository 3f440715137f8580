package yearplan

import (
	"context"
	"testing"
	"time"

	"github.com/bibdata/weekresolver/pkg/catalogue"
	"github.com/bibdata/weekresolver/pkg/weekcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ServiceImpl {
	return NewService(weekcode.NewService(catalogue.NewService(nil)))
}

func TestGetYearPlan(t *testing.T) {
	service := newTestService()

	plan, err := service.GetYearPlan(context.Background(), "BKM", 2023, "da-DK")
	require.NoError(t, err)

	assert.Equal(t, "BKM", plan.CatalogueCode)
	assert.Equal(t, 2023, plan.Year)
	require.Len(t, plan.Rows, 52)

	assert.Equal(t, "BKM202301", plan.Rows[0].WeekCode)

	// Easter week 2023 (week 14) rolls into week 15: both Mondays answer with
	// the same code.
	assert.Equal(t, "BKM202315", plan.Rows[13].WeekCode)
	assert.Equal(t, "BKM202315", plan.Rows[14].WeekCode)
}

func TestGetYearPlanLongYear(t *testing.T) {
	// 2024 has 53 Mondays falling inside the calendar year.
	service := newTestService()

	plan, err := service.GetYearPlan(context.Background(), "BKM", 2024, "da-DK")
	require.NoError(t, err)
	assert.Len(t, plan.Rows, 53)
}

func TestGetYearPlanUnknownCatalogue(t *testing.T) {
	service := newTestService()
	_, err := service.GetYearPlan(context.Background(), "XYZ", 2023, "da-DK")
	assert.ErrorIs(t, err, catalogue.ErrUnknownCatalogueCode)
}

func TestGetYearPlanCancelledContext(t *testing.T) {
	service := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := service.GetYearPlan(ctx, "BKM", 2023, "da-DK")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFirstMonday(t *testing.T) {
	assert.Equal(t, time.Date(2023, time.January, 2, 0, 0, 0, 0, time.UTC), firstMonday(2023))
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), firstMonday(2024))
}
