// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"bytes"
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/apex/log"

	"github.com/staranto/aocctl/internal/puzzle"
	"github.com/staranto/aocctl/internal/version"
)

const (
	// DefaultBaseURL is the public Advent of Code site.
	DefaultBaseURL = "https://adventofcode.com"

	ConnectTimeout = 30 * time.Second
	ReadTimeout    = 30 * time.Second

	sessionCookie = "session"
	redacted      = "[hidden]"
)

// InputGetter is anything that can produce the raw input of a puzzle. The
// repository depends on this rather than on AocClient so tests can stub it.
type InputGetter interface {
	GetPuzzleInput(ctx context.Context, year, day int) (string, error)
}

// AocClient fetches puzzle inputs over HTTP. The session key is opaque and is
// never rendered by String, GoString or any fmt verb.
type AocClient struct {
	baseURL    *url.URL
	sessionKey string
	userAgent   string
	readTimeout time.Duration
	httpClient  *http.Client
}

// Option customizes an AocClient.
type Option func(*AocClient)

// WithHTTPClient replaces the default timeout-bound http.Client. nil keeps
// the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *AocClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithReadTimeout overrides the budget for reading the response body once
// headers have arrived. Zero or negative keeps ReadTimeout.
func WithReadTimeout(d time.Duration) Option {
	return func(c *AocClient) {
		if d > 0 {
			c.readTimeout = d
		}
	}
}

// WithUserAgent overrides the default aocctl/<version> User-Agent.
func WithUserAgent(ua string) Option {
	return func(c *AocClient) { c.userAgent = ua }
}

// NewAocClient returns a client for baseURL authenticating with sessionKey.
func NewAocClient(baseURL, sessionKey string, opts ...Option) (*AocClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}

	c := &AocClient{
		baseURL:    u,
		sessionKey: sessionKey,
		userAgent:   "aocctl/" + version.Version,
		readTimeout: ReadTimeout,
		httpClient:  newHTTPClient(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// newHTTPClient returns a client with a 30s connect budget and a 30s wait for
// response headers. The body read budget is enforced per request.
func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		TLSHandshakeTimeout:   ConnectTimeout,
		ResponseHeaderTimeout: ReadTimeout,
		IdleConnTimeout:       90 * time.Second,
	}

	return &http.Client{Transport: tr}
}

// GetPuzzleInput issues one GET for {base}/{year}/day/{day}/input and returns
// the body as-is. A 404 becomes *puzzle.InputUnavailableError and any other
// non-2xx status becomes *StatusError. There are no retries.
func (c *AocClient) GetPuzzleInput(ctx context.Context, year, day int) (string, error) {
	inputURL := c.InputURL(year, day)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, inputURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	if c.sessionKey != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: c.sessionKey})
	}

	log.WithField("url", inputURL).Debug("fetching puzzle input")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", puzzle.NewInputUnavailable(year, day)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			URL:        inputURL,
		}
	}

	// Cancelling the request context aborts a body read that overruns.
	timedOut := make(chan struct{})
	timer := time.AfterFunc(c.readTimeout, func() {
		close(timedOut)
		cancel()
	})

	var body bytes.Buffer
	_, err = body.ReadFrom(resp.Body)
	if !timer.Stop() {
		<-timedOut
		return "", fmt.Errorf("failed to read response: %w after %s", ErrReadTimeout, c.readTimeout)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	log.WithField("url", inputURL).Debugf("fetched %d bytes", body.Len())
	return body.String(), nil
}

// InputURL returns the input URL for the puzzle.
func (c *AocClient) InputURL(year, day int) string {
	return c.baseURL.JoinPath(strconv.Itoa(year), "day", strconv.Itoa(day), "input").String()
}

func (c AocClient) String() string {
	return fmt.Sprintf("AocClient(base_url=%s, session_key=%s)", c.baseURL, redacted)
}

func (c AocClient) GoString() string {
	return c.String()
}
