package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tls-123321/Event-Manager/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func (c *Client) Login(ctx context.Context, email, password string) (*domain.Tokens, error) {
	resp, err := c.do(ctx, http.MethodPost, "/profile/login/", loginRequest{Email: email, Password: password}, false)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return nil, apiError(resp, domain.ErrValidation, "login failed")
	}

	var body loginResponse
	if err = c.decode(resp, &body); err != nil {
		return nil, err
	}

	// The server may answer 200 with an error payload instead of tokens;
	// transport success alone does not mean the login succeeded.
	if body.Access == "" {
		msg := body.Detail
		if msg == "" {
			msg = "login failed"
		}
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	}

	return &domain.Tokens{Access: body.Access, Refresh: body.Refresh}, nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/profile/register/",
		registerRequest{Username: username, Email: email, Password: password}, false)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		return apiError(resp, domain.ErrValidation, "registration failed")
	}

	return nil
}

// Logout asks the server to revoke the refresh token. The caller is expected
// to clear the local session regardless of the outcome.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/profile/logout/",
		logoutRequest{Refresh: c.session.RefreshToken()}, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if !ok(resp) {
		c.log.Debug("logout rejected by server", logger.Int("status", resp.StatusCode))
		return fmt.Errorf("logout: unexpected status %d", resp.StatusCode)
	}

	return nil
}
