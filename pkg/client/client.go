// Package client is a Go client for the taskdeck API. It owns the session
// lifecycle (uninitialized, loading, anonymous, authenticated) and carries
// the session token either through its cookie jar or, for non-browser
// callers, as a bearer token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
)

const defaultCookieName = "token"

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TaskUpdate is a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// APIError carries the server-provided message when the response had one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	cookieName string

	mu    sync.Mutex
	token string
	state SessionState
	user  *User
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport; the caller is then
// responsible for providing a cookie jar if cookie auth is wanted.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithToken seeds a bearer token, used by CLI callers that persist the token
// between runs instead of relying on cookies.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

func WithCookieName(name string) Option {
	return func(c *Client) { c.cookieName = name }
}

// New creates a client for the API rooted at baseURL (including the /api
// prefix, e.g. "http://localhost:8080/api").
func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:    parsed,
		httpClient: &http.Client{Jar: jar},
		cookieName: defaultCookieName,
		state:      StateUninitialized,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) State() SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Client) CurrentUser() (User, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return User{}, false
	}
	return *c.user, true
}

// Token returns the session token the client currently holds: the seeded
// bearer token, or the session cookie captured at login.
func (c *Client) Token() string {
	c.mu.Lock()
	if c.token != "" {
		defer c.mu.Unlock()
		return c.token
	}
	c.mu.Unlock()

	if c.httpClient.Jar == nil {
		return ""
	}
	for _, cookie := range c.httpClient.Jar.Cookies(c.baseURL) {
		if cookie.Name == c.cookieName {
			return cookie.Value
		}
	}
	return ""
}

// Init resolves the current session. Any failure resolves to anonymous; a
// plain 401 is not reported as an error since an absent session is a normal
// outcome.
func (c *Client) Init(ctx context.Context) error {
	c.setState(StateLoading, nil)

	var resp sessionResponse
	err := c.do(ctx, http.MethodGet, "/auth/me", nil, &resp)
	if err != nil {
		c.setState(StateAnonymous, nil)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return nil
		}
		return err
	}

	c.setState(StateAuthenticated, &resp.User)
	return nil
}

// Register creates an account. It does not log the new user in.
func (c *Client) Register(ctx context.Context, username, email, password string) (User, error) {
	body := map[string]string{"username": username, "email": email, "password": password}
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", body, &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp sessionResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return User{}, err
	}

	c.setState(StateAuthenticated, &resp.User)
	return resp.User, nil
}

// Logout ends the local session no matter what the server says; a backend
// failure during logout is deliberately swallowed.
func (c *Client) Logout(ctx context.Context) {
	_ = c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)

	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
	c.setState(StateAnonymous, nil)
}

func (c *Client) ListTasks(ctx context.Context) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/tasks/"+id, nil, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) CreateTask(ctx context.Context, title, description string) (Task, error) {
	body := map[string]string{"title": title, "description": description}
	var task Task
	if err := c.do(ctx, http.MethodPost, "/tasks", body, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, id string, update TaskUpdate) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, "/tasks/"+id, update, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) DeleteTask(ctx context.Context, id string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) ToggleTask(ctx context.Context, id string) (Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+id+"/toggle", nil, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

type sessionResponse struct {
	User User `json:"user"`
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) setState(state SessionState, user *User) {
	c.mu.Lock()
	c.state = state
	c.user = user
	c.mu.Unlock()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.String()+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		return json.NewDecoder(resp.Body).Decode(out)
	}

	// Surface the server's message when there is one; a generic fallback
	// otherwise.
	message := "request failed"
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		message = envelope.Error.Message
	}

	return &APIError{StatusCode: resp.StatusCode, Message: message}
}
