package mcmaster

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/pkcs12"

	"github.com/partkit/partkit/internal/domain/shared"
	"github.com/partkit/partkit/internal/infrastructure/auth"
)

// Config holds everything the client needs to reach the catalog API.
type Config struct {
	BaseURL             string
	Username            string
	Password            string
	CertificatePath     string
	CertificatePassword string
	Timeout             time.Duration
}

// Client talks to the McMaster-Carr Product Information API. The API
// requires a PKCS#12 client certificate on every connection plus a
// bearer token obtained from the login endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cfg        Config
	cache      *auth.TokenCache
	logger     *zap.Logger
	token      string
}

// New builds a client. When cfg.CertificatePath is empty the client runs
// without a TLS identity, which only works against test servers.
func New(cfg Config, cache *auth.TokenCache, logger *zap.Logger) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := &http.Transport{}
	if cfg.CertificatePath != "" {
		cert, err := loadClientCertificate(cfg.CertificatePath, cfg.CertificatePassword)
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		}
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout, Transport: transport},
		baseURL:    cfg.BaseURL,
		cfg:        cfg,
		cache:      cache,
		logger:     logger.Named("mcmaster"),
	}, nil
}

// loadClientCertificate reads a PKCS#12 bundle and converts it into a
// TLS certificate usable as a client identity.
func loadClientCertificate(path, password string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("reading certificate %s: %w", path, err)
	}

	blocks, err := pkcs12.ToPEM(data, password)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decoding PKCS#12 certificate: %w", err)
	}

	var pemData []byte
	for _, b := range blocks {
		pemData = append(pemData, pem.EncodeToMemory(b)...)
	}

	cert, err := tls.X509KeyPair(pemData, pemData)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("building TLS identity: %w", err)
	}
	return cert, nil
}

// APIError is a structured error response from the catalog API.
type APIError struct {
	Status      int
	Code        string `json:"ErrorCode"`
	Message     string `json:"ErrorMessage"`
	Description string `json:"ErrorDescription"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("catalog API error (HTTP %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("catalog API error: HTTP %d", e.Status)
}

// ensureToken makes sure the client holds a usable bearer token,
// loading the cached one or logging in with the configured credentials.
func (c *Client) ensureToken(ctx context.Context) error {
	if auth.TokenValid(c.token) {
		return nil
	}

	if c.cache != nil {
		if cached := c.cache.Load(); cached != "" {
			c.token = cached
			return nil
		}
	}

	if c.cfg.Username == "" || c.cfg.Password == "" {
		return shared.ErrUnauthorized
	}

	c.logger.Debug("cached token missing or expired, logging in",
		zap.String("username", c.cfg.Username))
	return c.Login(ctx, c.cfg.Username, c.cfg.Password)
}

// doJSON issues a request with the bearer token and decodes a JSON
// response into out. A nil out discards the body. Non-2xx responses are
// returned as *APIError; 401 additionally wraps shared.ErrUnauthorized.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	if err := c.ensureToken(ctx); err != nil {
		return err
	}
	return c.doJSONWithToken(ctx, method, path, body, out, c.token)
}

func (c *Client) doJSONWithToken(ctx context.Context, method, path string, body, out any, token string) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("API request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if len(data) > 0 {
		_ = json.Unmarshal(data, apiErr)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%w: %s", shared.ErrUnauthorized, apiErr.Error())
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", shared.ErrNotFound, apiErr.Error())
	}
	return apiErr
}

// absoluteURL resolves a possibly relative download URL against the API
// host. The catalog returns image and CAD links as absolute paths.
func (c *Client) absoluteURL(raw string) string {
	if raw == "" || raw[0] != '/' {
		return raw
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return raw
	}
	return base.Scheme + "://" + base.Host + raw
}
