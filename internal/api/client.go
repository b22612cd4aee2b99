// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package api is the typed client for the forum REST backend. Every method
// wraps a single endpoint, takes a context, and attaches the caller's bearer
// token where the endpoint requires authentication. The backend is the
// authority for all data; this client does no caching or retries itself.
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
	"time"
)

// Client talks to the forum REST backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a Client for the backend at baseURL (e.g. "http://localhost:5000/api").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Error is a non-success response from the backend. Message carries the
// server-supplied error string verbatim so handlers can show it in a form
// banner; when the body had no usable message, Message holds a generic one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

// genericMessage is shown when the backend response carries no error string.
const genericMessage = "Something went wrong. Please try again."

// errorBody is the backend's error envelope.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// do performs one HTTP exchange against the backend. body is JSON-encoded
// when non-nil; out is JSON-decoded from the response when non-nil. token
// is attached as a bearer credential when non-empty.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api marshal: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("api read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("api unmarshal: %w", err)
		}
	}

	return nil
}

// decodeError extracts the backend's error string from a non-success body,
// falling back to a generic message when the body is empty or unreadable.
func decodeError(status int, body []byte) *Error {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			return &Error{Status: status, Message: eb.Error}
		}
		if eb.Message != "" {
			return &Error{Status: status, Message: eb.Message}
		}
	}
	return &Error{Status: status, Message: genericMessage}
}

// Message returns the user-facing message for err: the backend-supplied
// string for *Error values, a generic fallback for everything else
// (network failures, decode failures). Error kinds are deliberately not
// distinguished in the UI.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return genericMessage
}

// IsStatus reports whether err is a backend error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// pathEscape escapes a single path segment.
func pathEscape(s string) string {
	return url.PathEscape(s)
}
