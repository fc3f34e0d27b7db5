package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the identity service. Every request carries
// the project id and API key headers.
type Client struct {
	endpoint string
	project  string
	key      string
	http     *http.Client
}

// NewClient creates an identity client. The timeout bounds every outbound
// request.
func NewClient(endpoint, project, key string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		project:  project,
		key:      key,
		http:     &http.Client{Timeout: timeout},
	}
}

// GetUser fetches a user record by id.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	return c.do(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(userID), nil)
}

// UpdatePreferences replaces the stored preferences string for a user and
// returns the updated record.
func (c *Client) UpdatePreferences(ctx context.Context, userID, preferences string) (*User, error) {
	payload, err := json.Marshal(map[string]string{"preferences": preferences})
	if err != nil {
		return nil, fmt.Errorf("encode preferences payload: %w", err)
	}
	return c.do(ctx, http.MethodPatch, "/v1/users/"+url.PathEscape(userID)+"/prefs", payload)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*User, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set(ProjectHeader, c.project)
	req.Header.Set(KeyHeader, c.key)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrUserNotFound
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	return &user, nil
}
