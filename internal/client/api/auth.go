package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Zestathon/payorbit/internal/client/models"
)

var ErrInvalidLoginResponse = errors.New("invalid login response format")

// RegisterRequest carries the registration fields. ConfirmPassword is
// mapped to the field name the server expects on the wire.
type RegisterRequest struct {
	Username         string
	Email            string
	OrganizationName string
	FirstName        string
	LastName         string
	Password         string
	ConfirmPassword  string
}

type loginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Token string          `json:"token"`
		User  *models.Profile `json:"user"`
	} `json:"data"`
}

// Login submits credentials and, on success, commits token and profile to
// the credential store in one step. A rejected login leaves the store
// untouched.
func (c *Client) Login(ctx context.Context, username, password string) (*models.Profile, error) {
	payload := map[string]string{"username": username, "password": password}

	raw, err := c.doJSON(ctx, http.MethodPost, "/auth/login/", payload)
	if err != nil {
		return nil, err
	}

	var resp loginResponse
	if err := decodeJSON(raw, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Data.Token == "" || resp.Data.User == nil {
		return nil, ErrInvalidLoginResponse
	}

	if err := c.sessions.Set(ctx, resp.Data.Token, resp.Data.User); err != nil {
		return nil, fmt.Errorf("committing session: %w", err)
	}

	c.log.Info(ctx, "logged in", "username", resp.Data.User.Username)
	return resp.Data.User, nil
}

// Register creates a new account. It does not establish a session: the
// caller is expected to log in afterwards.
func (c *Client) Register(ctx context.Context, r RegisterRequest) error {
	payload := map[string]string{
		"username":          r.Username,
		"email":             r.Email,
		"organization_name": r.OrganizationName,
		"first_name":        r.FirstName,
		"last_name":         r.LastName,
		"password":          r.Password,
		"password2":         r.ConfirmPassword,
	}

	_, err := c.doJSON(ctx, http.MethodPost, "/auth/register/", payload)
	return err
}

// Logout ends the session. The server-side revoke is best effort; local
// clearing alone ends the session from the client's point of view, so a
// failed revoke never prevents it.
func (c *Client) Logout(ctx context.Context) error {
	if c.sessions.IsAuthenticated() {
		if _, err := c.doJSON(ctx, http.MethodPost, "/auth/logout/", nil); err != nil {
			c.log.Warn(ctx, "server-side logout failed, clearing locally", "err", err)
		}
	}

	if _, err := c.sessions.Clear(ctx); err != nil {
		return err
	}
	return nil
}

// ForgotPassword asks the server to start a password reset for the account
// behind the given email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/forgot-password/", map[string]string{"email": email})
	return err
}

// ResetPassword completes a password reset using the emailed token.
func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	payload := map[string]string{"token": token, "password": password}
	_, err := c.doJSON(ctx, http.MethodPost, "/auth/reset-password/", payload)
	return err
}

// CurrentUser is a pure read of the credential store; no network.
func (c *Client) CurrentUser() *models.Profile {
	return c.sessions.CurrentUser()
}

// IsAuthenticated is a pure read of the credential store; no network.
func (c *Client) IsAuthenticated() bool {
	return c.sessions.IsAuthenticated()
}
