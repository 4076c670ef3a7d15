package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/arclight-labs/gate-cli/internal/core/domain"
	"github.com/arclight-labs/gate-cli/internal/core/ports/driven"
	"github.com/arclight-labs/gate-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.AccountAPI = (*Client)(nil)

// Client talks to the account service's REST endpoints. Credential
// endpoints are throttled client-side; authenticated endpoints use a
// bearer-token transport.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates an account service client.
func NewClient(cfg Config) *Client {
	perMinute := cfg.LoginRatePerMinute
	if perMinute <= 0 {
		perMinute = DefaultConfig().LoginRatePerMinute
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    newHTTPClient(cfg),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

// Wire payloads. These mirror the account service's JSON contract and
// never leave this package except as driven.UserRecord / TokenGrant.

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

type authResponse struct {
	User  driven.UserRecord `json:"user"`
	Token struct {
		AccessToken  string    `json:"access_token"`
		RefreshToken string    `json:"refresh_token,omitempty"`
		ExpiresAt    time.Time `json:"expires_at,omitempty"`
	} `json:"token"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Login authenticates the credentials and returns the account with a
// fresh token grant.
func (c *Client) Login(ctx context.Context, params domain.LoginParams) (*driven.LoginResult, error) {
	return c.authenticate(ctx, "/v1/auth/login", credentialsRequest{
		Email:    params.Email,
		Password: params.Password,
	})
}

// Register creates a new account and returns it with a token grant.
func (c *Client) Register(ctx context.Context, params domain.RegisterParams) (*driven.LoginResult, error) {
	return c.authenticate(ctx, "/v1/auth/register", credentialsRequest{
		Email:       params.Email,
		Password:    params.Password,
		DisplayName: params.DisplayName,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, payload credentialsRequest) (*driven.LoginResult, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	logger.Debug("POST %s", path)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp)
	}

	var parsed authResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &driven.LoginResult{
		User: parsed.User,
		Token: driven.TokenGrant{
			AccessToken:  parsed.Token.AccessToken,
			RefreshToken: parsed.Token.RefreshToken,
			Expiry:       parsed.Token.ExpiresAt,
		},
	}, nil
}

// FetchUser retrieves the account behind the given access token.
func (c *Client) FetchUser(ctx context.Context, accessToken string) (*driven.UserRecord, error) {
	resp, err := c.authorized(ctx, accessToken, http.MethodGet, "/v1/user", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, domain.ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, responseError(resp)
	}

	var record driven.UserRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &record, nil
}

// Revoke invalidates the given access token on the service.
func (c *Client) Revoke(ctx context.Context, accessToken string) error {
	resp, err := c.authorized(ctx, accessToken, http.MethodPost, "/v1/auth/revoke", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrNotAuthenticated
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp)
	}
	return nil
}

// authorized performs a request with a bearer-token transport layered
// over the configured HTTP client.
func (c *Client) authorized(ctx context.Context, accessToken, method, path string, body io.Reader) (*http.Response, error) {
	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"})
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	client := oauth2.NewClient(ctx, source)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	logger.Debug("%s %s", method, path)
	return client.Do(req)
}

// responseError extracts the service's error message from a failed
// response. The message is preserved so it survives the trip up to the
// domain-level server failure.
func responseError(resp *http.Response) error {
	var parsed errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err == nil && parsed.Error != "" {
		return fmt.Errorf("account service: %s (status %d)", parsed.Error, resp.StatusCode)
	}
	return fmt.Errorf("account service: unexpected status %d", resp.StatusCode)
}
