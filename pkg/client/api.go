// Package client is a Go SDK for the freelansy API. An API value handles the
// HTTP transport and session cookie; the stores layered on top cache lists in
// memory and keep them consistent through mutations.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// API is a thin HTTP client for the freelansy backend. The session cookie set
// by Login is kept in the jar and sent with every subsequent request.
type API struct {
	baseURL string
	http    *http.Client
}

type Option func(*API)

// WithHTTPClient substitutes the underlying HTTP client. A cookie jar is
// installed if the given client has none.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *API) { a.http = hc }
}

func New(baseURL string, opts ...Option) (*API, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	a := &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.http.Jar == nil {
		a.http.Jar = jar
	}
	return a, nil
}

// APIError is a non-2xx response decoded into its message and, for validation
// failures, the per-field errors.
type APIError struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: unexpected status %d", e.Status)
}

func (a *API) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, raw)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func decodeError(status int, raw []byte) *APIError {
	apiErr := &APIError{Status: status}
	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if json.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
		apiErr.Fields = body.Errors
	}
	return apiErr
}

// Register creates an account. It does not log in; call Login afterwards.
func (a *API) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var resp authResponse
	if err := a.do(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// Login authenticates and stores the session cookie in the jar.
func (a *API) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := a.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (a *API) Logout(ctx context.Context) error {
	return a.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

// Session returns the claims of the current session cookie.
func (a *API) Session(ctx context.Context) (*Session, error) {
	var s Session
	if err := a.do(ctx, http.MethodGet, "/api/auth/session", nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CheckEmail reports whether an email is already registered.
func (a *API) CheckEmail(ctx context.Context, email string) (bool, error) {
	var resp struct {
		Exists bool `json:"exists"`
	}
	path := "/api/auth/check-email?email=" + url.QueryEscape(email)
	if err := a.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return false, err
	}
	return resp.Exists, nil
}

func (a *API) ListClients(ctx context.Context) ([]Client, error) {
	var clients []Client
	if err := a.do(ctx, http.MethodGet, "/api/clients/", nil, &clients); err != nil {
		return nil, err
	}
	return clients, nil
}

func (a *API) CreateClient(ctx context.Context, req ClientRequest) (*Client, error) {
	var resp clientPayload
	if err := a.do(ctx, http.MethodPost, "/api/clients/", req, &resp); err != nil {
		return nil, err
	}
	return resp.Client, nil
}

func (a *API) UpdateClient(ctx context.Context, id string, req ClientRequest) (*Client, error) {
	var resp clientPayload
	if err := a.do(ctx, http.MethodPut, "/api/clients/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Client, nil
}

func (a *API) DeleteClient(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/clients/"+id, nil, nil)
}

func (a *API) ListMissions(ctx context.Context) ([]Mission, error) {
	var missions []Mission
	if err := a.do(ctx, http.MethodGet, "/api/missions/", nil, &missions); err != nil {
		return nil, err
	}
	return missions, nil
}

func (a *API) CreateMission(ctx context.Context, req MissionRequest) (*Mission, error) {
	var resp missionPayload
	if err := a.do(ctx, http.MethodPost, "/api/missions/", req, &resp); err != nil {
		return nil, err
	}
	return resp.Mission, nil
}

func (a *API) UpdateMission(ctx context.Context, id string, req MissionRequest) (*Mission, error) {
	var resp missionPayload
	if err := a.do(ctx, http.MethodPut, "/api/missions/"+id, req, &resp); err != nil {
		return nil, err
	}
	return resp.Mission, nil
}

func (a *API) DeleteMission(ctx context.Context, id string) error {
	return a.do(ctx, http.MethodDelete, "/api/missions/"+id, nil, nil)
}

// UpdateProfile applies the provided fields; the server re-issues the session
// cookie, which the jar picks up transparently.
func (a *API) UpdateProfile(ctx context.Context, req ProfileRequest) (*User, error) {
	var resp struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := a.do(ctx, http.MethodPut, "/api/user/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

func (a *API) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return a.do(ctx, http.MethodPut, "/api/user/password", body, nil)
}

func (a *API) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	if err := a.do(ctx, http.MethodGet, "/api/dashboard", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
