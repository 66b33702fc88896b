package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Client talks to the upstream museum collection API. The upstream store is
// authoritative; the gateway never persists anything it receives.
type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     logger,
	}
}

// NewClientFromEnv loads .env and reads MUSEUM_API_URL.
func NewClientFromEnv(logger *zap.Logger) (*Client, error) {
	// Load environment variables from .env file
	_ = godotenv.Load()

	base := os.Getenv("MUSEUM_API_URL")
	if base == "" {
		return nil, errors.New("MUSEUM_API_URL is not set")
	}
	return NewClient(base, logger), nil
}

// APIError is a non-2xx answer from the upstream API.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream responded %d", e.Status)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, header http.Header, body io.Reader, contentType string) ([]byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var msg struct {
			Message string `json:"message"`
			Err     string `json:"error"`
		}
		if json.Unmarshal(data, &msg) == nil {
			apiErr.Message = msg.Message
			if apiErr.Message == "" {
				apiErr.Message = msg.Err
			}
		}
		c.log.Warn("upstream error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode))
		return nil, apiErr
	}

	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil, nil, "")
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (c *Client) patchJSON(ctx context.Context, path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, http.MethodPatch, path, nil, nil, bytes.NewReader(body), "application/json")
	return err
}

// decodeList decodes an upstream list response into a flat slice. The
// backend answers some list endpoints with a flat array and others with an
// array of arrays; this is the only place that difference is absorbed.
// Records rejected by valid (typically a zero id) are dropped.
func decodeList[T any](data []byte, valid func(T) bool) ([]T, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	var out []T
	for _, elem := range raw {
		var one T
		if err := json.Unmarshal(elem, &one); err == nil {
			if valid == nil || valid(one) {
				out = append(out, one)
			}
			continue
		}
		var nested []T
		if err := json.Unmarshal(elem, &nested); err != nil {
			return nil, fmt.Errorf("unexpected list element shape: %w", err)
		}
		for _, one := range nested {
			if valid == nil || valid(one) {
				out = append(out, one)
			}
		}
	}
	return out, nil
}

func deletedQuery(deleted bool) url.Values {
	q := url.Values{}
	if deleted {
		q.Set("isDeleted", "true")
	} else {
		q.Set("isDeleted", "false")
	}
	return q
}
