package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mesaYaApi/internal/modules/notifications/application/port"
	"mesaYaApi/internal/modules/notifications/domain"
	"mesaYaApi/internal/shared/httputil"
)

const sendPath = "/email/send"

// MailHTTPClient delivers emails through the external mail endpoint.
// Any non-2xx response counts as a delivery failure.
type MailHTTPClient struct {
	rest    *httputil.RESTClient
	timeout time.Duration
}

func NewMailHTTPClient(baseURL string, timeout time.Duration, client *http.Client) *MailHTTPClient {
	return &MailHTTPClient{
		rest:    httputil.NewRESTClient(baseURL, timeout, client),
		timeout: httputil.TimeoutOrDefault(timeout),
	}
}

func (c *MailHTTPClient) Send(ctx context.Context, email domain.Email) error {
	if strings.TrimSpace(email.To) == "" {
		return fmt.Errorf("%w: missing recipient", port.ErrMailRejected)
	}

	payload, err := json.Marshal(email)
	if err != nil {
		return fmt.Errorf("encode email: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := c.rest.NewRequest(ctx, http.MethodPost, sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.rest.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrMailUnavailable, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode >= 200 && res.StatusCode < 300:
		slog.Debug("email accepted", slog.String("to", email.To), slog.Int("status", res.StatusCode))
		return nil
	case res.StatusCode >= 400 && res.StatusCode < 500:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
		return fmt.Errorf("%w: status %d: %s", port.ErrMailRejected, res.StatusCode, strings.TrimSpace(string(body)))
	default:
		return fmt.Errorf("%w: status %d", port.ErrMailUnavailable, res.StatusCode)
	}
}

var _ port.Mailer = (*MailHTTPClient)(nil)
