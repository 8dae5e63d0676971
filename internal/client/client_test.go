package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"guildbook/internal/domain/entity"
	"guildbook/internal/errors"
	"guildbook/internal/infra/sessionstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	session *sessionstore.Session
}

func (s *memoryStore) Save(session sessionstore.Session) error {
	s.session = &session

	return nil
}

func (s *memoryStore) Load() (*sessionstore.Session, error) {
	if s.session == nil {
		return nil, errors.WithStack(sessionstore.ErrNoSession)
	}
	cp := *s.session

	return &cp, nil
}

func (s *memoryStore) Clear() error {
	s.session = nil

	return nil
}

// fakeAPI issues numbered tokens and accepts only the newest one.
type fakeAPI struct {
	logins   atomic.Int32
	validTok atomic.Value
	password string
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/guilds/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != f.password {
			writeJSON(w, http.StatusForbidden, map[string]any{
				"error": map[string]string{"code": "ACCESS_DENIED", "message": "Acesso negado"},
			})

			return
		}
		n := f.logins.Add(1)
		tok := fmt.Sprintf("tok-%d", n)
		f.validTok.Store(tok)
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{
			"token": tok,
			"guild": entity.NewGuildState(req["guildId"], "Lobos"),
		}})
	})
	mux.HandleFunc("GET /api/v1/ledger", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+f.validTok.Load().(string) {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error": map[string]string{"code": "SESSION_EXPIRED", "message": "Sessão expirada"},
			})

			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": entity.NewGuildState("guild-1", "Lobos")})
	})
	mux.HandleFunc("POST /api/v1/ledger/finance/deposit", func(w http.ResponseWriter, r *http.Request) {
		state := entity.NewGuildState("guild-1", "Lobos")
		state.Wallet.TS = 50
		writeJSON(w, http.StatusOK, map[string]any{"data": map[string]any{"state": state}})
	})
	mux.HandleFunc("POST /api/v1/ledger/logout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	api := &fakeAPI{password: "segredo"}
	api.validTok.Store("")
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	return api, srv
}

func TestClient_LoginSavesSession(t *testing.T) {
	_, srv := newFakeAPI(t)
	store := &memoryStore{}
	c := New(store)

	state, err := c.Login(context.Background(), srv.URL+"/", "guild-1", "segredo")
	require.NoError(t, err)
	assert.Equal(t, "Lobos", state.GuildName)

	require.NotNil(t, store.session)
	assert.Equal(t, sessionstore.Session{Server: srv.URL, GuildID: "guild-1", Password: "segredo"}, *store.session)
}

func TestClient_LoginRejected(t *testing.T) {
	_, srv := newFakeAPI(t)
	store := &memoryStore{}
	c := New(store)

	_, err := c.Login(context.Background(), srv.URL, "guild-1", "errado")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "ACCESS_DENIED", apiErr.Code)
	assert.Nil(t, store.session)
}

func TestClient_UsesSavedSession(t *testing.T) {
	api, srv := newFakeAPI(t)
	store := &memoryStore{session: &sessionstore.Session{Server: srv.URL, GuildID: "guild-1", Password: "segredo"}}
	c := New(store)

	state, err := c.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "guild-1", state.ID)
	assert.Equal(t, int32(1), api.logins.Load())
}

func TestClient_ReauthenticatesOnExpiredSession(t *testing.T) {
	api, srv := newFakeAPI(t)
	store := &memoryStore{}
	c := New(store)

	_, err := c.Login(context.Background(), srv.URL, "guild-1", "segredo")
	require.NoError(t, err)

	// the server restarted and forgot the session
	api.validTok.Store("tok-from-elsewhere")

	state, err := c.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "guild-1", state.ID)
	assert.Equal(t, int32(2), api.logins.Load())
}

func TestClient_WithoutSession(t *testing.T) {
	c := New(&memoryStore{})

	_, err := c.State(context.Background())
	assert.True(t, errors.Is(err, sessionstore.ErrNoSession))
}

func TestClient_Mutate(t *testing.T) {
	_, srv := newFakeAPI(t)
	c := New(&memoryStore{})
	_, err := c.Login(context.Background(), srv.URL, "guild-1", "segredo")
	require.NoError(t, err)

	res, err := c.Mutate(context.Background(), http.MethodPost, "/finance/deposit", map[string]any{"amount": 50, "currency": "TS"})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.State.Wallet.TS)
}

func TestClient_LogoutClearsStore(t *testing.T) {
	_, srv := newFakeAPI(t)
	store := &memoryStore{}
	c := New(store)
	_, err := c.Login(context.Background(), srv.URL, "guild-1", "segredo")
	require.NoError(t, err)

	require.NoError(t, c.Logout(context.Background()))
	assert.Nil(t, store.session)
}
