package remotestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"car_maintenance/internal/domain/apperr"
	"car_maintenance/internal/usecase/interfaces"
)

const (
	defaultTimeout    = 10 * time.Second
	readRetryBackoff  = 200 * time.Millisecond
	maxErrorBodyBytes = 512
)

// Config configures the remote JSON store client.
type Config struct {
	// BaseURL is the store root, e.g. https://example-default-rtdb.firebaseio.com
	BaseURL string
	// AuthToken is appended as the "auth" query parameter when set.
	AuthToken string
	// Timeout bounds every single HTTP exchange. Default 10s.
	Timeout time.Duration
	// ReadRetries is how many times a failed GET is retried (4xx answers are not).
	// Writes are never retried.
	ReadRetries int
	// HTTPClient overrides the transport (tests).
	HTTPClient *http.Client
}

// Client is the uniform request/response wrapper around the external store.
//
// URL shape:
//   - {base}/{collection}.json
//   - {base}/{collection}/{key}.json
type Client struct {
	base        string
	auth        string
	timeout     time.Duration
	readRetries int
	http        *http.Client
}

var _ interfaces.IRemoteStore = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, errors.New("remote store base url is required")
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid remote store base url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	retries := cfg.ReadRetries
	if retries < 0 {
		retries = 0
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: base, auth: cfg.AuthToken, timeout: timeout, readRetries: retries, http: hc}, nil
}

func (c *Client) GetAll(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	body, err := c.read(ctx, c.collectionURL(collection))
	if err != nil {
		return nil, err
	}
	out := map[string]json.RawMessage{}
	if isNull(body) {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s collection: %v", apperr.ErrNetwork, collection, err)
	}
	return out, nil
}

func (c *Client) GetByKey(ctx context.Context, collection, key string) (json.RawMessage, error) {
	body, err := c.read(ctx, c.recordURL(collection, key))
	if err != nil {
		return nil, err
	}
	if isNull(body) {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

func (c *Client) Post(ctx context.Context, collection string, body any) (string, error) {
	resp, err := c.write(ctx, http.MethodPost, c.collectionURL(collection), body)
	if err != nil {
		return "", err
	}
	var created struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(resp, &created); err != nil || created.Name == "" {
		// The store acknowledged the write but we cannot tell which key it got.
		return "", fmt.Errorf("%w: post %s: unreadable acknowledgement", apperr.ErrIndeterminate, collection)
	}
	return created.Name, nil
}

func (c *Client) Patch(ctx context.Context, collection, key string, partial any) error {
	_, err := c.write(ctx, http.MethodPatch, c.recordURL(collection, key), partial)
	return err
}

func (c *Client) read(ctx context.Context, target string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.readRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %v", apperr.ErrNetwork, ctx.Err())
			case <-time.After(time.Duration(attempt) * readRetryBackoff):
			}
			log.Printf("[store][client] retrying read attempt=%d url=%s", attempt, redact(target))
		}
		body, status, err := c.do(ctx, http.MethodGet, target, nil)
		if err == nil && status/100 == 2 {
			return body, nil
		}
		if err != nil {
			lastErr = fmt.Errorf("%w: GET %s: %v", apperr.ErrNetwork, redact(target), err)
		} else {
			lastErr = statusError(http.MethodGet, target, status, body)
			if status/100 == 4 {
				break
			}
		}
	}
	log.Printf("[store][client] read failed url=%s err=%v", redact(target), lastErr)
	return nil, lastErr
}

func (c *Client) write(ctx context.Context, method, target string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperr.Validation("encode %s body: %v", method, err)
	}
	body, status, err := c.do(ctx, method, target, raw)
	if err != nil {
		// The request may have reached the store before the failure.
		log.Printf("[store][client] write outcome unknown method=%s url=%s err=%v", method, redact(target), err)
		return nil, fmt.Errorf("%w: %s %s: %v", apperr.ErrIndeterminate, method, redact(target), err)
	}
	if status/100 != 2 {
		log.Printf("[store][client] write rejected method=%s url=%s status=%d", method, redact(target), status)
		return nil, statusError(method, target, status, body)
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, target string, payload []byte) ([]byte, int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("[store][client] warning: failed to close body: %v", closeErr)
		}
	}()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}

func (c *Client) collectionURL(collection string) string {
	return c.withAuth(fmt.Sprintf("%s/%s.json", c.base, url.PathEscape(collection)))
}

func (c *Client) recordURL(collection, key string) string {
	return c.withAuth(fmt.Sprintf("%s/%s/%s.json", c.base, url.PathEscape(collection), url.PathEscape(key)))
}

func (c *Client) withAuth(u string) string {
	if c.auth == "" {
		return u
	}
	return u + "?auth=" + url.QueryEscape(c.auth)
}

func statusError(method, target string, status int, body []byte) error {
	if len(body) > maxErrorBodyBytes {
		body = body[:maxErrorBodyBytes]
	}
	return fmt.Errorf("%w: %s %s: status %d: %s", apperr.ErrNetwork, method, redact(target), status, strings.TrimSpace(string(body)))
}

func isNull(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// redact drops the query string so auth tokens never reach the logs.
func redact(target string) string {
	if i := strings.IndexByte(target, '?'); i >= 0 {
		return target[:i]
	}
	return target
}
