// Package authsdk is the Go client for the EduSupport API. It covers the
// unauthenticated auth endpoints, an authenticated Session for the catalog
// endpoints, and a client-side session guard mirroring the web app's
// route protection.
package authsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the EduSupport service. It provides access to
// unauthenticated operations and can create authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new EduSupport client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns an authenticated session.
func (c *SDKClient) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	tokenResp, err := c.requestToken(ctx, "/v1/auth/register", req)
	if err != nil {
		return nil, err
	}
	return newSession(c, tokenResp.Token), nil
}

// Login verifies credentials and returns an authenticated session.
func (c *SDKClient) Login(ctx context.Context, email, password string) (*Session, error) {
	tokenResp, err := c.requestToken(ctx, "/v1/auth/login", LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return newSession(c, tokenResp.Token), nil
}

// NewSessionFromToken creates a session from a previously stored token, e.g.
// one loaded from a TokenStore. No server round trip is made; the token is
// validated lazily on first use.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return newSession(c, token)
}

func (c *SDKClient) requestToken(ctx context.Context, path string, payload any) (*TokenResponse, error) {
	var tokenResp TokenResponse
	if err := c.postJSON(ctx, path, "", payload, &tokenResp); err != nil {
		return nil, err
	}
	if tokenResp.Token == "" {
		return nil, fmt.Errorf("server returned no token")
	}
	return &tokenResp, nil
}

// postJSON sends a JSON POST and decodes the response into out. A non-empty
// token is attached as a bearer credential.
func (c *SDKClient) postJSON(ctx context.Context, path, token string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, token, out)
}

// getJSON sends a GET and decodes the response into out.
func (c *SDKClient) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return c.do(req, token, out)
}

func (c *SDKClient) do(req *http.Request, token string, out any) error {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if err := parseErrorResponse(resp, respBody); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
