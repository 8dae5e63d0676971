// Package client talks to the guildbook API on behalf of the CLI. It keeps
// the guild login in a session store and logs in again when the server
// reports an expired session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"guildbook/internal/domain/entity"
	"guildbook/internal/errors"
	"guildbook/internal/infra/sessionstore"
)

const (
	defaultTimeout = 30 * time.Second
	apiPrefix      = "/api/v1"
)

// SessionStore remembers the guild login between invocations.
type SessionStore interface {
	Save(session sessionstore.Session) error
	Load() (*sessionstore.Session, error)
	Clear() error
}

// APIError is a non-2xx response decoded from the API error envelope.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *APIError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s (%d %s): %v", e.Message, e.Status, e.Code, e.Details)
	}

	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

// MutationResult is the guild state after a ledger operation plus the
// operation's own result, if any.
type MutationResult struct {
	State  *entity.GuildState `json:"state"`
	Result json.RawMessage    `json:"result,omitempty"`
}

// Client is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	store      SessionStore
	logger     *slog.Logger

	mu      sync.Mutex
	token   string
	session *sessionstore.Session
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used for re-authentication notices.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client that reads and writes its login through store.
func New(store SessionStore, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      store,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

type loginResponse struct {
	Token string             `json:"token"`
	Guild *entity.GuildState `json:"guild"`
}

// Login opens a guild session on server and remembers it on success.
func (c *Client) Login(ctx context.Context, server, guildID, password string) (*entity.GuildState, error) {
	session := sessionstore.Session{
		Server:   strings.TrimRight(server, "/"),
		GuildID:  guildID,
		Password: password,
	}

	state, err := c.authenticate(ctx, &session)
	if err != nil {
		return nil, err
	}

	if err := c.store.Save(session); err != nil {
		return nil, err
	}

	return state, nil
}

// Logout closes the server session, if one is open, and forgets the saved login.
func (c *Client) Logout(ctx context.Context) error {
	c.mu.Lock()
	token, session := c.token, c.session
	c.token, c.session = "", nil
	c.mu.Unlock()

	if token != "" && session != nil {
		if err := c.send(ctx, session.Server, token, http.MethodPost, apiPrefix+"/ledger/logout", nil, nil); err != nil {
			c.logger.Warn("Failed to close server session", slog.Any("error", err))
		}
	}

	return c.store.Clear()
}

// State returns the guild state of the current session.
func (c *Client) State(ctx context.Context) (*entity.GuildState, error) {
	var state entity.GuildState
	if err := c.Authorized(ctx, http.MethodGet, "/ledger", nil, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Mutate runs a ledger operation. path is relative to /api/v1/ledger.
func (c *Client) Mutate(ctx context.Context, method, path string, body any) (*MutationResult, error) {
	var result MutationResult
	if err := c.Authorized(ctx, method, "/ledger"+path, body, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// ListGuilds returns the most recently updated guilds of server.
func (c *Client) ListGuilds(ctx context.Context, server string) ([]*entity.GuildSummary, error) {
	var guilds []*entity.GuildSummary
	if err := c.send(ctx, strings.TrimRight(server, "/"), "", http.MethodGet, apiPrefix+"/guilds", nil, &guilds); err != nil {
		return nil, err
	}

	return guilds, nil
}

// CreateGuild founds a guild on server.
func (c *Client) CreateGuild(ctx context.Context, server, name, password string) (*entity.GuildState, error) {
	var state entity.GuildState
	body := map[string]string{"name": name, "password": password}
	if err := c.send(ctx, strings.TrimRight(server, "/"), "", http.MethodPost, apiPrefix+"/guilds", body, &state); err != nil {
		return nil, err
	}

	return &state, nil
}

// Authorized sends an authenticated request below /api/v1. A 401 answer
// triggers one silent login with the saved credentials and a retry.
func (c *Client) Authorized(ctx context.Context, method, path string, body, out any) error {
	session, token, err := c.current(ctx)
	if err != nil {
		return err
	}

	err = c.send(ctx, session.Server, token, method, apiPrefix+path, body, out)

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		return err
	}

	c.logger.Info("Session expired, logging in again", slog.String("guild_id", session.GuildID))
	if _, err := c.authenticate(ctx, session); err != nil {
		return err
	}

	c.mu.Lock()
	token = c.token
	c.mu.Unlock()

	return c.send(ctx, session.Server, token, method, apiPrefix+path, body, out)
}

// current returns the active session, loading it from the store and logging
// in when needed.
func (c *Client) current(ctx context.Context) (*sessionstore.Session, string, error) {
	c.mu.Lock()
	session, token := c.session, c.token
	c.mu.Unlock()

	if session != nil && token != "" {
		return session, token, nil
	}

	saved, err := c.store.Load()
	if err != nil {
		return nil, "", err
	}
	if _, err := c.authenticate(ctx, saved); err != nil {
		return nil, "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.session, c.token, nil
}

func (c *Client) authenticate(ctx context.Context, session *sessionstore.Session) (*entity.GuildState, error) {
	var resp loginResponse
	body := map[string]string{"guildId": session.GuildID, "password": session.Password}
	if err := c.send(ctx, session.Server, "", http.MethodPost, apiPrefix+"/guilds/login", body, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, errors.New("login response without token")
	}

	c.mu.Lock()
	c.token = resp.Token
	c.session = session
	c.mu.Unlock()

	return resp.Guild, nil
}

func (c *Client) send(ctx context.Context, server, token, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, server+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return errors.Wrapf(err, "unexpected response from %s %s (%d)", method, path, resp.StatusCode)
		}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code, apiErr.Message, apiErr.Details = env.Error.Code, env.Error.Message, env.Error.Details
		}

		return errors.WithStack(apiErr)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.WithStack(json.Unmarshal(env.Data, out))
}
