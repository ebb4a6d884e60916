// Package api is the HTTP client for the profile backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ruminaider/profilectl/internal/profiles"
)

const (
	profilesPath = "/api/profiles"
	generatePath = "/api/create-chat-profile"

	// DefaultDefaultsPath serves the server-side generation parameters.
	DefaultDefaultsPath = "/api/default-params"

	requestIDHeader = "X-Request-Id"
	maxErrorBody    = 8 * 1024
)

// Client talks to the profile REST API on behalf of one user.
type Client struct {
	BaseURL      string
	HTTPClient   *http.Client
	Username     string
	DefaultsPath string
	Logger       *slog.Logger
}

// New returns a client for baseURL acting as username.
func New(baseURL, username string, timeout time.Duration) *Client {
	return &Client{
		BaseURL:      strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTPClient:   &http.Client{Timeout: timeout},
		Username:     username,
		DefaultsPath: DefaultDefaultsPath,
	}
}

// APIError is returned for non-2xx responses.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s failed (%d): %s", e.Method, e.Path, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s %s failed with status %d", e.Method, e.Path, e.StatusCode)
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ListProfiles fetches every profile of the user.
func (c *Client) ListProfiles(ctx context.Context) ([]profiles.Profile, error) {
	var list []profiles.Profile
	if err := c.doJSON(ctx, http.MethodGet, c.profilesURL(""), nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []profiles.Profile{}
	}
	return list, nil
}

// CreateProfile stores p as a new profile.
func (c *Client) CreateProfile(ctx context.Context, p profiles.Profile) error {
	return c.doJSON(ctx, http.MethodPost, c.profilesURL(""), p, nil)
}

// UpdateProfile replaces the profile stored under oldName with p. p.Name may
// differ from oldName, which renames the profile.
func (c *Client) UpdateProfile(ctx context.Context, oldName string, p profiles.Profile) error {
	return c.doJSON(ctx, http.MethodPut, c.profilesURL(oldName), p, nil)
}

// DeleteProfile removes the named profile.
func (c *Client) DeleteProfile(ctx context.Context, name string) error {
	return c.doJSON(ctx, http.MethodDelete, c.profilesURL(name), nil, nil)
}

// GenerateProfile asks the backend to draft a profile for a profession.
func (c *Client) GenerateProfile(ctx context.Context, profession string) (profiles.Generated, error) {
	req := struct {
		Profession string `json:"profession"`
	}{Profession: profession}

	var gen profiles.Generated
	if err := c.doJSON(ctx, http.MethodPost, generatePath, req, &gen); err != nil {
		return profiles.Generated{}, err
	}
	return gen, nil
}

// Defaults fetches the server-side generation parameter defaults.
func (c *Client) Defaults(ctx context.Context) (profiles.Defaults, error) {
	path := c.DefaultsPath
	if strings.TrimSpace(path) == "" {
		path = DefaultDefaultsPath
	}

	var d profiles.Defaults
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &d); err != nil {
		return profiles.Defaults{}, err
	}
	return d, nil
}

func (c *Client) profilesURL(name string) string {
	path := profilesPath
	if name != "" {
		path += "/" + url.PathEscape(name)
	}
	q := url.Values{"username": {c.Username}}
	return path + "?" + q.Encode()
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	if c == nil {
		return fmt.Errorf("api client is nil")
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	reqURL := strings.TrimRight(c.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set(requestIDHeader, reqID)

	log := c.logger().With("method", method, "path", path, "request_id", reqID)
	start := time.Now()

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Debug("request failed", "err", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	log.Debug("request done", "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(method, path, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decoding response: %w", method, path, err)
	}
	return nil
}

func newAPIError(method, path string, resp *http.Response) *APIError {
	apiErr := &APIError{Method: method, Path: stripQuery(path), StatusCode: resp.StatusCode}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(data) > 0 {
		var er errorResponse
		if err := json.Unmarshal(data, &er); err == nil {
			apiErr.Message = strings.TrimSpace(er.Error)
			if apiErr.Message == "" {
				apiErr.Message = strings.TrimSpace(er.Message)
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}

func stripQuery(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		return path[:i]
	}
	return path
}
