package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMiddlewareLabelsHandlerStatus(t *testing.T) {
	t.Parallel()

	m := New("test")
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "no such record")
	})
	e.GET("/broken", func(c echo.Context) error {
		return errors.New("storage offline")
	})
	e.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	for _, path := range []string{"/missing", "/broken", "/ok"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/missing", "404")); got != 1 {
		t.Fatalf("expected the handler's 404 to be recorded, got %f", got)
	}
	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/broken", "500")); got != 1 {
		t.Fatalf("expected opaque errors to be recorded as 500, got %f", got)
	}
	if got := testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/ok", "204")); got != 1 {
		t.Fatalf("expected the committed status to be recorded, got %f", got)
	}
}
