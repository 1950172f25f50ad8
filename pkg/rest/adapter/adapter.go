package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ib-77/restrop/pkg/rest"
)

// Config holds client configuration
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Success is the status range treated as success; zero value means
	// rest.DefaultSuccessRange.
	Success rest.SuccessRange
}

// Client turns declarative API calls into rest.Result values. It owns an
// http.Client; the responses and error bodies inside produced results are
// borrowed from it.
type Client struct {
	baseURL string
	apiKey  string
	success rest.SuccessRange
	hc      *http.Client
}

// NewClient creates a new result-producing API client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Success == (rest.SuccessRange{}) {
		config.Success = rest.DefaultSuccessRange
	}

	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		success: config.Success,
		hc: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Call performs the request and feeds its outcome through the rest.Of
// factory: in-range statuses decode the JSON body into T and become a
// success, out-of-range statuses become an error carrying the unread body,
// and transport or decoding errors become an exception.
func Call[T any](ctx context.Context, c *Client, method, path string, body any) rest.Result[T] {
	return rest.Of(c.success, func() (rest.Call[T], error) {
		var reqBody io.Reader
		if body != nil {
			data, err := json.Marshal(body)
			if err != nil {
				return rest.Call[T]{}, fmt.Errorf("failed to marshal request body: %w", err)
			}
			reqBody = bytes.NewBuffer(data)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
		if err != nil {
			return rest.Call[T]{}, fmt.Errorf("failed to create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.hc.Do(req)
		if err != nil {
			return rest.Call[T]{}, err
		}

		call := rest.Call[T]{
			StatusCode: resp.StatusCode,
			Headers:    resp.Header,
			Raw:        resp,
		}

		if !c.success.Contains(resp.StatusCode) {
			// left unread; the transport owns it and it may be consumed once
			call.ErrorBody = resp.Body
			return call, nil
		}

		defer resp.Body.Close()
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return rest.Call[T]{}, fmt.Errorf("failed to read response body: %w", err)
		}
		if len(raw) > 0 {
			var data T
			if err := json.Unmarshal(raw, &data); err != nil {
				return rest.Call[T]{}, fmt.Errorf("failed to decode response: %w", err)
			}
			call.Body = data
			call.HasBody = true
		}
		return call, nil
	})
}

// Go runs Call on its own goroutine and hands the produced result to
// complete. This is the completion-handler form used when the result type is
// the declared return of an asynchronous API surface.
func Go[T any](ctx context.Context, c *Client, method, path string, body any,
	complete func(r rest.Result[T])) {
	go func() {
		complete(Call[T](ctx, c, method, path, body))
	}()
}
