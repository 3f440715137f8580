// Package connector is a Go client for the week code service, for use by
// other services in the catalogue pipeline.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/bibdata/weekresolver/pkg/weekcode"
	log "github.com/sirupsen/logrus"
)

// StatusError is returned when the service answers with a non-OK status that
// is still not OK after all retries.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("week code service returned status %d", e.StatusCode)
}

type Client interface {
	GetWeekCode(ctx context.Context, catalogueCode string, date time.Time) (weekcode.WeekCodeResultDTO, error)
	GetCurrentWeekCode(ctx context.Context, catalogueCode string) (weekcode.WeekCodeResultDTO, error)
}

type ClientImpl struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

// Option configures a ClientImpl.
type Option func(*ClientImpl)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *ClientImpl) { c.httpClient = httpClient }
}

func WithRetries(retries int, delay time.Duration) Option {
	return func(c *ClientImpl) {
		c.retries = retries
		c.retryDelay = delay
	}
}

func NewClient(baseURL string, opts ...Option) *ClientImpl {
	c := &ClientImpl{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		retries:    2,
		retryDelay: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ClientImpl) GetWeekCode(ctx context.Context, catalogueCode string, date time.Time) (weekcode.WeekCodeResultDTO, error) {
	requestURL := fmt.Sprintf("%s/api/v1/weekcode/%s?date=%s",
		c.baseURL, url.PathEscape(catalogueCode), date.Format("2006-01-02"))
	return c.get(ctx, requestURL)
}

func (c *ClientImpl) GetCurrentWeekCode(ctx context.Context, catalogueCode string) (weekcode.WeekCodeResultDTO, error) {
	requestURL := fmt.Sprintf("%s/api/v1/weekcode/%s/current", c.baseURL, url.PathEscape(catalogueCode))
	return c.get(ctx, requestURL)
}

// get performs the request, retrying on 404, 500, and 502. A freshly deployed
// service instance can briefly answer 404 before its routes are up, so 404 is
// treated as transient here.
func (c *ClientImpl) get(ctx context.Context, requestURL string) (weekcode.WeekCodeResultDTO, error) {
	var lastStatus int
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return weekcode.WeekCodeResultDTO{}, ctx.Err()
			case <-time.After(c.retryDelay):
			}
			log.Debugf("retrying week code request (attempt %d): %s", attempt+1, requestURL)
		}

		req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
		if err != nil {
			return weekcode.WeekCodeResultDTO{}, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return weekcode.WeekCodeResultDTO{}, err
		}

		if resp.StatusCode == http.StatusOK {
			var result weekcode.WeekCodeResultDTO
			err := json.NewDecoder(resp.Body).Decode(&result)
			resp.Body.Close()
			if err != nil {
				return weekcode.WeekCodeResultDTO{}, fmt.Errorf("failed to decode response: %w", err)
			}
			return result, nil
		}

		resp.Body.Close()
		lastStatus = resp.StatusCode
		if !retryable(resp.StatusCode) {
			return weekcode.WeekCodeResultDTO{}, &StatusError{StatusCode: resp.StatusCode}
		}
	}
	return weekcode.WeekCodeResultDTO{}, &StatusError{StatusCode: lastStatus}
}

func retryable(statusCode int) bool {
	return statusCode == http.StatusNotFound ||
		statusCode == http.StatusInternalServerError ||
		statusCode == http.StatusBadGateway
}
