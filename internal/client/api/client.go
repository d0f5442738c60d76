// Package api is the HTTP client for the PayOrbit backend. Every operation
// goes through the transport interceptor pair; none talks to the network
// directly.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Zestathon/payorbit/internal/client/models"
	"github.com/Zestathon/payorbit/internal/client/transport"
	"github.com/Zestathon/payorbit/internal/logging"
)

// SessionStore is the credential store surface the Session API needs.
type SessionStore interface {
	Set(ctx context.Context, token string, user *models.Profile) error
	Clear(ctx context.Context) (bool, error)
	Token() string
	CurrentUser() *models.Profile
	IsAuthenticated() bool
}

type Client struct {
	t        *transport.Client
	sessions SessionStore
	log      logging.Logger
}

func New(t *transport.Client, sessions SessionStore, log logging.Logger) *Client {
	return &Client{t: t, sessions: sessions, log: log}
}

// doJSON issues a request with an optional JSON payload and returns the raw
// response body. Non-2xx statuses (other than the 401s the transport
// already typed) come back as *transport.ServerError.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	contentType := ""
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(b)
		contentType = "application/json"
	}

	req, err := c.t.NewRequest(ctx, method, path, body, contentType)
	if err != nil {
		return nil, err
	}

	resp, err := c.t.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, transport.NewServerError(resp.StatusCode, raw)
	}

	return raw, nil
}
