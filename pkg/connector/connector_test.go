package connector

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bibdata/weekresolver/pkg/weekcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetWeekCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weekcode/DPF", r.URL.Path)
		assert.Equal(t, "2019-10-10", r.URL.Query().Get("date"))
		_ = json.NewEncoder(w).Encode(weekcode.WeekCodeResultDTO{
			WeekCode:      "DPF201944",
			CatalogueCode: "DPF",
			WeekNumber:    44,
			Year:          2019,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.GetWeekCode(context.Background(), "DPF", time.Date(2019, time.October, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "DPF201944", result.WeekCode)
	assert.Equal(t, 44, result.WeekNumber)
}

func TestGetCurrentWeekCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/weekcode/BKM/current", r.URL.Path)
		_ = json.NewEncoder(w).Encode(weekcode.WeekCodeResultDTO{WeekCode: "BKM202310"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.GetCurrentWeekCode(context.Background(), "BKM")
	require.NoError(t, err)
	assert.Equal(t, "BKM202310", result.WeekCode)
}

func TestRetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(weekcode.WeekCodeResultDTO{WeekCode: "DPF201944"})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithRetries(2, time.Millisecond))
	result, err := client.GetWeekCode(context.Background(), "DPF", time.Date(2019, time.October, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "DPF201944", result.WeekCode)
	assert.Equal(t, 3, attempts)
}

func TestGivesUpAfterRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithRetries(2, time.Millisecond))
	_, err := client.GetCurrentWeekCode(context.Background(), "BKM")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
	assert.Equal(t, 3, attempts)
}

func TestDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, WithRetries(2, time.Millisecond))
	_, err := client.GetCurrentWeekCode(context.Background(), "XYZ")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, 1, attempts)
}
