package corebank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/isabitech/branchbooks/internal/domain"
)

// Client is the read-side HTTP client for the core-banking API. All reads
// share the uniform response envelope; a successful reply with a null
// nested entity is the documented "no record yet" state and is reported
// as absent, never as an error.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retrier    *Retrier
}

// envelope is the uniform upstream response shape.
type envelope struct {
	Success bool                       `json:"success"`
	Data    map[string]json.RawMessage `json:"data"`
	Message string                     `json:"message"`
}

// NewClient creates a new core-banking API client.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
		retrier:    NewRetrier(),
	}
}

// get performs one upstream read and extracts the named entity from the
// envelope. The bool result reports whether a record exists: false with a
// nil error is the valid empty state.
func (c *Client) get(ctx context.Context, path string, query url.Values, entity string, out any) (bool, error) {
	var body []byte

	err := c.retrier.Retry(ctx, func() error {
		u := c.baseURL + path
		if len(query) > 0 {
			u += "?" + query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return transient(err)
		}
		defer resp.Body.Close()

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return transient(err)
		}

		switch {
		case resp.StatusCode >= 500:
			return transient(fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, http.MethodGet, path, resp.StatusCode))
		case resp.StatusCode >= 400:
			return permanent(fmt.Errorf("%w: %s %s: status %d", domain.ErrUpstream, http.MethodGet, path, resp.StatusCode))
		}

		body = b
		return nil
	})
	if err != nil {
		return false, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return false, fmt.Errorf("%w: decode %s: %v", domain.ErrUpstream, path, err)
	}
	if !env.Success {
		return false, fmt.Errorf("%w: %s: %s", domain.ErrUpstream, path, env.Message)
	}

	raw, ok := env.Data[entity]
	if !ok || isNull(raw) {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: decode %s.%s: %v", domain.ErrUpstream, path, entity, err)
	}
	return true, nil
}

// patch performs one upstream mutation. Conflicts are mapped to
// domain.ErrAlreadySubmitted and never retried.
func (c *Client) patch(ctx context.Context, path string, payload any, idempotencyKey string) error {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	switch {
	case resp.StatusCode == http.StatusConflict:
		return domain.ErrAlreadySubmitted
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrOperationNotFound
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: PATCH %s: status %d: %s", domain.ErrUpstream, path, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: decode PATCH %s: %v", domain.ErrUpstream, path, err)
	}
	if !env.Success {
		return fmt.Errorf("%w: PATCH %s: %s", domain.ErrUpstream, path, env.Message)
	}
	return nil
}

// Ping probes upstream reachability for readiness checks. Any response,
// including an auth rejection, proves the API is up.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: health: status %d", domain.ErrUpstream, resp.StatusCode)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func dailyKey(branchID, date string) url.Values {
	return url.Values{"branchId": {branchID}, "date": {date}}
}

func monthlyKey(branchID, month, year string) url.Values {
	return url.Values{"branchId": {branchID}, "month": {month}, "year": {year}}
}
