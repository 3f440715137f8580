package catalogue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceWithoutRepository(t *testing.T) {
	service := NewService(nil)

	cfg, err := service.Lookup("BKM")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.AddWeeks)

	require.NoError(t, service.Reload(context.Background()))
	_, err = service.Lookup("BKM")
	assert.NoError(t, err)
}

func TestServiceReloadAppliesOverrides(t *testing.T) {
	monday := time.Monday
	repo := NewStubRepository()
	repo.Overrides = []Override{
		{Code: "BKM", Config: Config{AddWeeks: 2, ShiftDay: &monday}},
		{Code: "NEW", Config: Config{FixedWeekCode: "999999"}},
	}
	service := NewService(repo)

	// Before reload only the built-in rules are visible.
	_, err := service.Lookup("NEW")
	assert.ErrorIs(t, err, ErrUnknownCatalogueCode)

	require.NoError(t, service.Reload(context.Background()))

	cfg, err := service.Lookup("BKM")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.AddWeeks)
	assert.Equal(t, time.Monday, *cfg.ShiftDay)

	cfg, err = service.Lookup("NEW")
	require.NoError(t, err)
	assert.Equal(t, "999999", cfg.FixedWeekCode)

	// Untouched defaults survive a reload.
	cfg, err = service.Lookup("DPF")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.AddWeeks)
}

func TestServiceReloadRepositoryError(t *testing.T) {
	repo := NewStubRepository()
	repo.Err = fmt.Errorf("connection refused")
	service := NewService(repo)

	err := service.Reload(context.Background())
	assert.Error(t, err)

	// The previous registry stays in place after a failed reload.
	_, err = service.Lookup("BKM")
	assert.NoError(t, err)
}
