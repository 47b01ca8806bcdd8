package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mesaYaApi/internal/modules/restaurants/application/port"
	"mesaYaApi/internal/shared/httputil"
	"mesaYaApi/internal/shared/normalization"
)

// InsightsHTTPClient fetches precomputed AI indicators for a restaurant
// from the analytics service.
type InsightsHTTPClient struct {
	rest    *httputil.RESTClient
	apiKey  string
	timeout time.Duration
}

func NewInsightsHTTPClient(baseURL, apiKey string, timeout time.Duration, client *http.Client) *InsightsHTTPClient {
	return &InsightsHTTPClient{
		rest:    httputil.NewRESTClient(baseURL, timeout, client),
		apiKey:  strings.TrimSpace(apiKey),
		timeout: httputil.TimeoutOrDefault(timeout),
	}
}

func (c *InsightsHTTPClient) Fetch(ctx context.Context, restaurantID string) (map[string]any, error) {
	if strings.TrimSpace(restaurantID) == "" {
		return nil, fmt.Errorf("%w: empty restaurant id", port.ErrInsightsNotFound)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := fmt.Sprintf("/restaurants/%s/ai-insights", restaurantID)
	req, err := c.rest.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build insights request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insights request: %w", err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		var payload any
		if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
			return nil, fmt.Errorf("decode insights response: %w", err)
		}
		insights := normalization.MapFromPayload(payload)
		if insights == nil {
			return nil, fmt.Errorf("%w: empty payload for %s", port.ErrInsightsNotFound, restaurantID)
		}
		return insights, nil
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", port.ErrInsightsForbidden, res.StatusCode)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", port.ErrInsightsNotFound, restaurantID)
	default:
		return nil, fmt.Errorf("insights service returned status %d", res.StatusCode)
	}
}

var _ port.InsightsFetcher = (*InsightsHTTPClient)(nil)
