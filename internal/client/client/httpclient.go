package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/billbreak/internal/client/config"
	"github.com/dmitrijs2005/billbreak/internal/client/models"
	"github.com/dmitrijs2005/billbreak/internal/logging"
)

// HTTPClient talks JSON to the BillBreak REST API. Every request gets the
// current bearer token from its TokenSource; nothing is retried.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	log        logging.Logger
	now        func() time.Time
}

var _ Client = (*HTTPClient)(nil)

func NewHTTPClient(cfg *config.Config, tokens TokenSource, log logging.Logger) *HTTPClient {
	log = log.With("component", "http_client")
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout:   cfg.RequestTimeout,
			Transport: newAuthTransport(http.DefaultTransport, tokens, log),
		},
		log: log,
		now: time.Now,
	}
}

// doJSON sends body (if any) as JSON and decodes a 2xx answer into out
// (if non-nil).
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	ctx := req.Context()
	path := req.URL.Path

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", req.Method, "path", path, "error", err)
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(ctxErr, context.DeadlineExceeded) {
			return fmt.Errorf("request canceled: %w", ctxErr)
		}
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error(ctx, "failed to read response", "method", req.Method, "path", path, "error", err)
		return fmt.Errorf("%w: failed to read response: %w", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
		if resp.StatusCode == http.StatusUnauthorized {
			apiErr.Retried = true
			c.log.Warn(ctx, "authentication failed, please login again", "method", req.Method, "path", path)
		}
		c.log.Error(ctx, "api error", "method", req.Method, "path", path, "status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.Error(ctx, "failed to parse response", "method", req.Method, "path", path, "error", err)
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}

// errorMessage extracts the backend's {"error": "..."} text, "" when absent.
func errorMessage(body []byte) string {
	var er models.ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return ""
	}
	return er.Error
}

// list decodes either a bare JSON array or a {"data": [...]} envelope.
// A JSON null, bare or as data, is an empty list.
type list[T any] []T

func (l *list[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var env map[string]json.RawMessage
		if err := json.Unmarshal(b, &env); err != nil {
			return err
		}
		data, ok := env["data"]
		if !ok {
			return errors.New("expected a JSON array or a data envelope")
		}
		b = data
	}

	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	*l = items
	return nil
}
