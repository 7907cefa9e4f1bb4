package fdc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/wellnest/backend/internal/domain"
)

// dataTypeFilter restricts searches to curated USDA datasets. Branded and
// crowd-sourced entries are excluded on purpose: their nutrient rows are too
// unreliable for the tracker.
const dataTypeFilter = "Foundation,SR Legacy"

// maxAttempts allows exactly one retry on top of the initial request.
// Retries apply to transport failures and 5xx/429 only, never other 4xx.
const maxAttempts = 2

// Client handles communication with the USDA FoodData Central API.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	log         *logrus.Logger
}

// NewClient creates a new FDC API client.
// USDA allows 1000 requests per hour; rate.Limit is requests per second,
// so 1000/3600 ≈ 0.278 req/sec with a small burst.
func NewClient(apiKey, baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(0.278), 10),
		log:         log,
	}
}

// backoff returns the sleep duration before retry attempt n.
func backoff(attempt int) time.Duration {
	return time.Duration(attempt*500) * time.Millisecond
}

// doRequest executes an HTTP GET request with proper headers.
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Wellnest/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Covers timeouts as well; they map to the same upstream failure
		// class as an HTTP error.
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	return resp, nil
}

// retryable reports whether a status code is worth one more attempt.
func retryable(status int) bool {
	return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
}

// SearchFoods issues one paginated free-text search against FDC.
func (c *Client) SearchFoods(ctx context.Context, query string, pageSize, pageNumber int) (*domain.FDCSearchResponse, error) {
	endpoint := fmt.Sprintf("%s/v1/foods/search", c.baseURL)
	params := url.Values{}
	params.Add("query", query)
	params.Add("api_key", c.apiKey)
	params.Add("dataType", dataTypeFilter)
	params.Add("pageSize", strconv.Itoa(pageSize))
	params.Add("pageNumber", strconv.Itoa(pageNumber))

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			c.log.WithError(err).WithField("attempt", attempt).Warn("fdc search request failed")
			lastErr = err
			if ctx.Err() != nil {
				return nil, lastErr
			}
			time.Sleep(backoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
			c.log.WithFields(logrus.Fields{
				"attempt": attempt,
				"status":  resp.StatusCode,
			}).Warn("fdc search returned non-success status")
			if !retryable(resp.StatusCode) {
				return nil, lastErr
			}
			time.Sleep(backoff(attempt))
			continue
		}

		var searchResp domain.FDCSearchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}

		c.log.WithFields(logrus.Fields{
			"query": query,
			"hits":  searchResp.TotalHits,
		}).Debug("fdc search completed")
		return &searchResp, nil
	}

	return nil, lastErr
}

// GetFood retrieves the full record for a specific food by FDC ID.
func (c *Client) GetFood(ctx context.Context, fdcID string) (*domain.FDCFood, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1/food/%s", c.baseURL, url.PathEscape(fdcID))
	params := url.Values{}
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrFoodNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	var food domain.FDCFood
	if err := json.NewDecoder(resp.Body).Decode(&food); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &food, nil
}
