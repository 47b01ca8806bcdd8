package infrastructure

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mesaYaApi/internal/modules/restaurants/application/port"
)

func TestInsightsHTTPClientFetchUnwrapsEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/restaurants/rest-1/ai-insights" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Fatalf("unexpected authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"demand_score":0.82,"peak_day":"Friday"}}`))
	}))
	defer server.Close()

	client := NewInsightsHTTPClient(server.URL, "secret", 0, nil)
	insights, err := client.Fetch(context.Background(), "rest-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insights["peak_day"] != "Friday" {
		t.Fatalf("expected unwrapped payload, got %v", insights)
	}
}

func TestInsightsHTTPClientFetchNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewInsightsHTTPClient(server.URL, "", 0, nil)
	_, err := client.Fetch(context.Background(), "missing")
	if !errors.Is(err, port.ErrInsightsNotFound) {
		t.Fatalf("expected ErrInsightsNotFound, got %v", err)
	}
}

func TestInsightsHTTPClientFetchForbidden(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewInsightsHTTPClient(server.URL, "", 0, nil)
	_, err := client.Fetch(context.Background(), "rest-1")
	if !errors.Is(err, port.ErrInsightsForbidden) {
		t.Fatalf("expected ErrInsightsForbidden, got %v", err)
	}
}
