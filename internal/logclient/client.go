// Package logclient provides HTTP access to a devlog daemon's API for
// callers that cannot reach the local IPC socket.
package logclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"devlog/internal/api"
)

var ErrAPIUnavailable = errors.New("devlog API unavailable")

// Client talks to the daemon's HTTP API.
type Client struct {
	base  *url.URL
	token string
	http  *http.Client
}

// New builds a client for the given bind address ("host:port" or a full URL).
// An empty bind returns a nil client; method calls on it report
// ErrAPIUnavailable.
func New(bind, token string) (*Client, error) {
	bind = strings.TrimSpace(bind)
	if bind == "" {
		return nil, nil
	}
	if !strings.Contains(bind, "://") {
		bind = "http://" + bind
	}
	base, err := url.Parse(bind)
	if err != nil {
		return nil, err
	}
	base.Path = ""
	base.RawQuery = ""
	base.Fragment = ""

	return &Client{
		base:  base,
		token: token,
		http:  &http.Client{},
	}, nil
}

// Tail fetches the last lines of the log. lines <= 0 lets the daemon apply
// its configured default.
func (c *Client) Tail(ctx context.Context, lines int) (api.LogContent, error) {
	values := url.Values{}
	if lines > 0 {
		values.Set("lines", strconv.Itoa(lines))
	}
	var payload api.LogContent
	err := c.get(ctx, "/api/log/tail", values, &payload)
	return payload, err
}

// Search returns log lines matching query.
func (c *Client) Search(ctx context.Context, query string) (api.LogContent, error) {
	values := url.Values{}
	values.Set("query", query)
	var payload api.LogContent
	err := c.get(ctx, "/api/log/search", values, &payload)
	return payload, err
}

// Status retrieves daemon runtime information.
func (c *Client) Status(ctx context.Context) (api.DaemonStatus, error) {
	var payload api.DaemonStatus
	err := c.get(ctx, "/api/status", nil, &payload)
	return payload, err
}

// Write appends a timestamped entry to the log.
func (c *Client) Write(ctx context.Context, text string) (api.WriteResult, error) {
	var payload api.WriteResult
	if c == nil {
		return payload, ErrAPIUnavailable
	}

	body, err := json.Marshal(api.WriteBody{Text: text})
	if err != nil {
		return payload, err
	}
	endpoint := c.base.ResolveReference(&url.URL{Path: "/api/log/entries"})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return payload, err
	}
	req.Header.Set("Content-Type", "application/json")
	err = c.do(req, &payload)
	return payload, err
}

func (c *Client) get(ctx context.Context, path string, values url.Values, out any) error {
	if c == nil {
		return ErrAPIUnavailable
	}
	ref := &url.URL{Path: path}
	if values != nil {
		ref.RawQuery = values.Encode()
	}
	endpoint := c.base.ResolveReference(ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var failure struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&failure); decodeErr == nil && failure.Error != "" {
			return fmt.Errorf("api returned status %d: %s", resp.StatusCode, failure.Error)
		}
		return fmt.Errorf("api returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// IsAPIUnavailable reports whether err looks like the daemon API being down
// rather than a request-level failure.
func IsAPIUnavailable(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		err = urlErr.Err
	}
	var opErr *net.OpError
	return errors.Is(err, ErrAPIUnavailable) || errors.As(err, &opErr)
}
