package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// cachedToken is the on-disk shape of a saved API token.
type cachedToken struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// TokenCache persists the catalog API bearer token between invocations so
// a CLI run does not have to log in every time. Tokens are stored as a
// small JSON file with 0600 permissions.
type TokenCache struct {
	path string
}

// NewTokenCache creates a token cache backed by the given file path.
func NewTokenCache(path string) *TokenCache {
	return &TokenCache{path: path}
}

// Save writes the token to disk, creating the parent directory if needed.
func (c *TokenCache) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("creating token cache directory: %w", err)
	}

	data, err := json.Marshal(cachedToken{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0o600); err != nil {
		return fmt.Errorf("writing token cache: %w", err)
	}
	return nil
}

// Load returns the cached token, or "" when no usable token exists. A
// token past its expiry is treated as absent.
func (c *TokenCache) Load() string {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return ""
	}

	var cached cachedToken
	if err := json.Unmarshal(data, &cached); err != nil {
		return ""
	}

	if !TokenValid(cached.Token) {
		return ""
	}
	return cached.Token
}

// Clear removes the cached token. Missing files are not an error.
func (c *TokenCache) Clear() error {
	err := os.Remove(c.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing token cache: %w", err)
	}
	return nil
}

// TokenValid reports whether the token's expiry claim is still in the
// future. The token is issued by the upstream API, so the signature is
// not verified here; only the exp claim is inspected. Tokens without an
// exp claim, or that do not parse as JWTs, are considered expired.
func TokenValid(token string) bool {
	if token == "" {
		return false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	// Refresh slightly early so in-flight requests don't race the expiry.
	return time.Now().Add(30 * time.Second).Before(exp.Time)
}
