// Package api holds the HTTP binding shared by every accessor. It owns
// request construction, response decoding and the classification of all
// transport-level outcomes into AccessError kinds; accessors never see a
// raw *url.Error or json error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/frahmantamala/workforce-management/internal"
)

type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = internal.DefaultTimeout
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return internal.NewTransportError("encode request body", 0, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return internal.NewTransportError("build request", 0, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	traceID := uuid.NewString()
	req.Header.Set("X-Trace-ID", traceID)

	c.logger.Debug("store request", "method", method, "url", requestURL, "trace_id", traceID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransportError(err, ctx)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		accessErr := classifyResponse(resp)
		c.logger.Debug("store request failed",
			"method", method,
			"url", requestURL,
			"trace_id", traceID,
			"status", resp.StatusCode,
			"kind", accessErr.Kind)
		return accessErr
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return internal.NewMalformedEntityError("response", err)
	}
	return nil
}

func classifyTransportError(err error, ctx context.Context) *internal.AccessError {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		return internal.NewCancelledError(err)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return internal.NewCancelledError(err)
	}
	return internal.NewTransportError("store unreachable", 0, err)
}

// classifyResponse maps every non-2xx answer to the failure taxonomy. The
// store reports validation problems either as {"error": "..."} or as
// DRF-style {"field": ["problem", ...]} bodies.
func classifyResponse(resp *http.Response) *internal.AccessError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return &internal.AccessError{
			Kind:       internal.ErrorKindNotFound,
			Message:    "record not found",
			StatusCode: resp.StatusCode,
		}
	case http.StatusBadRequest:
		message, fieldErrors := parseValidationBody(body)
		accessErr := internal.NewValidationError(message, fieldErrors)
		accessErr.StatusCode = resp.StatusCode
		return accessErr
	case http.StatusConflict:
		message, _ := parseValidationBody(body)
		if message == "validation failed" {
			message = "store refused the operation"
		}
		accessErr := internal.NewConflictError(message)
		accessErr.StatusCode = resp.StatusCode
		return accessErr
	default:
		return internal.NewTransportError(
			fmt.Sprintf("store answered status %d", resp.StatusCode),
			resp.StatusCode, nil)
	}
}

func parseValidationBody(body []byte) (string, []internal.FieldError) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "validation failed", nil
	}

	for _, key := range []string{"error", "detail"} {
		if msg, ok := raw[key]; ok {
			var text string
			if json.Unmarshal(msg, &text) == nil && text != "" {
				return text, nil
			}
		}
	}

	var fieldErrors []internal.FieldError
	for field, value := range raw {
		var messages []string
		if json.Unmarshal(value, &messages) == nil {
			for _, message := range messages {
				fieldErrors = append(fieldErrors, internal.FieldError{Field: field, Message: message})
			}
			continue
		}
		var single string
		if json.Unmarshal(value, &single) == nil {
			fieldErrors = append(fieldErrors, internal.FieldError{Field: field, Message: single})
		}
	}
	return "validation failed", fieldErrors
}
