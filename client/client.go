// Package client performs authenticated JSON HTTP calls against the
// dashboard backend and is the single place that classifies HTTP outcomes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cleanduds/admin-dashboard/config"
	"github.com/cleanduds/admin-dashboard/notify"
	"github.com/cleanduds/admin-dashboard/session"
	cerr "github.com/cleanduds/admin-dashboard/utils/errors"
	"github.com/cleanduds/admin-dashboard/utils/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Client struct {
	baseURL  string
	http     *http.Client
	session  *session.Session
	notifier notify.Notifier
}

func New(cfg config.APIConfig, sess *session.Session, notifier notify.Notifier) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		session:  sess,
		notifier: notifier,
	}
}

// Do issues one JSON request and decodes the response into out (skipped when
// out is nil). Outcomes:
//   - 401: the session is cleared, one "Session expired" notification is
//     emitted and cerr.ErrSessionExpired is returned. Callers treat it as
//     "request aborted", not as an error to report.
//   - other non-2xx: a *cerr.APIError carrying the backend's message field
//     when one can be parsed.
//   - 2xx with an undecodable body: a decode error.
func (c *Client) Do(ctx context.Context, method, path string, body, out interface{}) error {
	fullURL := path
	if !strings.HasPrefix(path, "http") {
		fullURL = c.baseURL + path
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.session.Clear()
		notify.Failure(c.notifier, "Session expired", "Please log in again.")
		logger.Debug("session expired",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
		)
		return cerr.ErrSessionExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := cerr.NewAPIError(resp.StatusCode, readErrorMessage(resp.Body))
		logger.Error("API request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestID),
			zap.String("error", apiErr.Error()),
		)
		return apiErr
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("API response decode failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	return nil
}

// readErrorMessage parses `{"message": ...}` from an error body, best
// effort. An unparseable body yields the empty string and the caller falls
// back to the status-code message.
func readErrorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}

func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Paginated appends page/limit query parameters to a path.
func Paginated(path string, page, limit int) string {
	q := url.Values{}
	q.Set("page", fmt.Sprintf("%d", page))
	q.Set("limit", fmt.Sprintf("%d", limit))
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + q.Encode()
}
