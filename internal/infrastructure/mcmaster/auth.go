package mcmaster

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type loginRequest struct {
	UserName string `json:"UserName"`
	Password string `json:"Password"`
}

type loginResponse struct {
	AuthToken    string `json:"AuthToken"`
	ExpirationTS string `json:"ExpirationTS"`
}

// Login authenticates with the catalog API and caches the returned
// bearer token for later invocations.
func (c *Client) Login(ctx context.Context, username, password string) error {
	var resp loginResponse
	err := c.doJSONWithToken(ctx, http.MethodPost, "/login",
		loginRequest{UserName: username, Password: password}, &resp, "")
	if err != nil {
		return err
	}

	c.token = resp.AuthToken
	if c.cache != nil {
		if err := c.cache.Save(resp.AuthToken); err != nil {
			c.logger.Warn("could not cache token", zap.Error(err))
		}
	}

	c.logger.Info("logged in", zap.String("username", username))
	return nil
}

// Logout invalidates the current token server-side and drops the cached
// copy. Calling Logout without a token is a no-op.
func (c *Client) Logout(ctx context.Context) error {
	if c.token == "" && c.cache != nil {
		c.token = c.cache.Load()
	}
	if c.token == "" {
		return nil
	}

	if err := c.doJSONWithToken(ctx, http.MethodDelete, "/logout", nil, nil, c.token); err != nil {
		return err
	}

	c.token = ""
	if c.cache != nil {
		if err := c.cache.Clear(); err != nil {
			c.logger.Warn("could not clear token cache", zap.Error(err))
		}
	}

	c.logger.Info("logged out")
	return nil
}
