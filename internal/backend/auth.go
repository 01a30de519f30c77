package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/chandra447/item-tracker/internal/models"
)

const usersPath = "/api/collections/users"

// AuthResponse is the backend's reply to a successful password login.
type AuthResponse struct {
	Token  string      `json:"token"`
	Record models.User `json:"record"`
}

// AuthWithPassword exchanges an email/password pair for a session token
// and the user record. A 400 means bad credentials, a 403 a disabled or
// unverified account; use IsBadCredentials / IsAccountDisabled to tell
// them apart.
func (c *Client) AuthWithPassword(ctx context.Context, email, password string) (AuthResponse, error) {
	var auth AuthResponse
	body := map[string]any{
		"identity": email,
		"password": password,
	}
	if err := c.send(ctx, http.MethodPost, usersPath+"/auth-with-password", nil, body, &auth, "users", "auth"); err != nil {
		return AuthResponse{}, err
	}
	if auth.Token == "" {
		return AuthResponse{}, fmt.Errorf("auth response missing token")
	}
	if err := auth.Record.Validate(); err != nil {
		return AuthResponse{}, fmt.Errorf("invalid users record: %w", err)
	}
	return auth, nil
}

// RequestPasswordReset asks the backend to email a reset token. The
// backend answers success regardless of whether the address exists.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]any{"email": email}
	return c.send(ctx, http.MethodPost, usersPath+"/request-password-reset", nil, body, nil, "users", "reset-request")
}

// ConfirmPasswordReset completes a reset with the emailed token.
func (c *Client) ConfirmPasswordReset(ctx context.Context, token, password, passwordConfirm string) error {
	body := map[string]any{
		"token":           token,
		"password":        password,
		"passwordConfirm": passwordConfirm,
	}
	return c.send(ctx, http.MethodPost, usersPath+"/confirm-password-reset", nil, body, nil, "users", "reset-confirm")
}

// Ping probes connectivity with the settings endpoint. A 401 still means
// the backend is reachable; it just requires auth for the full payload.
func (c *Client) Ping(ctx context.Context) error {
	err := c.send(ctx, http.MethodGet, "/api/settings", nil, nil, nil, "settings", "ping")
	if err != nil && statusIs(err, http.StatusUnauthorized) {
		return nil
	}
	return err
}
