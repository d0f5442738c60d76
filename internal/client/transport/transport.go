// Package transport implements the request/response interceptor pair every
// PayOrbit API call goes through. The request side attaches authorization
// and content-type headers based on endpoint classification; the response
// side normalizes connectivity failures and reacts to authentication
// failures by clearing the credential store and signalling an observer.
// No workflow talks to the server except through Client.Do.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Zestathon/payorbit/internal/logging"
	"github.com/google/uuid"
)

// Credentials is the slice of the session store the transport needs: the
// current token for the request side, and an idempotent clear for the
// response side. Clear reports whether a session was actually removed.
type Credentials interface {
	Token() string
	Clear(ctx context.Context) (bool, error)
}

// Client decorates, executes and inspects every outgoing request.
type Client struct {
	base      *url.URL
	http      *http.Client
	creds     Credentials
	log       logging.Logger
	onInvalid func()
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used by tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func New(baseURL string, creds Credentials, log logging.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	c := &Client{
		base:  u,
		http:  &http.Client{},
		creds: creds,
		log:   log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// OnSessionInvalidated registers the observer notified when an
// authentication failure caused the session to be cleared. The transport
// itself performs no navigation; the outer controller decides what the
// signal means.
func (c *Client) OnSessionInvalidated(fn func()) {
	c.onInvalid = fn
}

// NewRequest builds a request for a path relative to the configured base
// address. path may carry a query string; it is split off before the path
// is joined so the '?' never ends up percent-encoded into the path itself.
// contentType may be empty; the request interceptor fills in the JSON
// default for non-multipart bodies.
func (c *Client) NewRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	u := *c.base
	if i := strings.Index(path, "?"); i >= 0 {
		path, u.RawQuery = path[:i], path[i+1:]
	}
	u.Path = strings.TrimRight(u.Path, "/") + path

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req, nil
}

// Do runs the interceptor pair around a single request. The returned
// response, when non-nil, still has its body open; callers own closing it.
// Connectivity failures come back as *NetworkError, authentication
// failures as *AuthenticationError. Every other status is returned
// unchanged for the caller to interpret.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	c.decorate(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed before a response was received",
			"method", req.Method, "path", req.URL.Path, "err", err)
		return nil, &NetworkError{Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, c.handleUnauthorized(req, resp)
	}

	return resp, nil
}

// decorate is the request interceptor. Header mutation only: no blocking,
// no retries.
func (c *Client) decorate(req *http.Request) {
	class := Classify(req.URL.Path)

	switch class {
	case ClassAuthPublic:
		// Never authorized, even with a token in the store.
		req.Header.Del("Authorization")
	default:
		if token := c.creds.Token(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("%s %s", SchemeFor(token), token))
		}
	}

	// A multipart body arrives with its boundary-bearing content type
	// already set by the multipart writer; leave it alone. Everything else
	// defaults to JSON.
	if req.Header.Get("Content-Type") == "" && req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	req.Header.Set("Accept", "application/json")
	if req.Header.Get("X-Request-Id") == "" {
		req.Header.Set("X-Request-Id", uuid.NewString())
	}
}

// handleUnauthorized is the 401 branch of the response interceptor.
// Auth-public and upload endpoints are the exclusion set: their failures
// belong to the caller. Anywhere else the session is expired or invalid,
// so the store is cleared and the observer signalled once; repeated
// failures on an already-empty store are no-ops.
func (c *Client) handleUnauthorized(req *http.Request, resp *http.Response) error {
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	msg, _ := decodeErrorBody(resp.StatusCode, body)
	class := Classify(req.URL.Path)

	if class != ClassProtected {
		return &AuthenticationError{Message: msg}
	}

	cleared, err := c.creds.Clear(req.Context())
	if err != nil {
		c.log.Error(req.Context(), "failed to clear session after authentication failure", "err", err)
	}
	if cleared {
		c.log.Info(req.Context(), "session invalidated", "path", req.URL.Path)
		if c.onInvalid != nil {
			c.onInvalid()
		}
	}

	return &AuthenticationError{Message: msg, Invalidated: cleared}
}
