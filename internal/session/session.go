// Package session is the client's session guard: it authenticates against
// the backend, holds the resulting identity, and supplies the credential for
// mutating requests. It performs no authorization itself; the backend is the
// authority.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"clubsync/internal/api"
	"clubsync/internal/auth"
	"clubsync/internal/model"
)

// Session holds the current credential and authenticated user. It implements
// api.TokenSource, so the data-layer client attaches its token to mutating
// requests.
type Session struct {
	mu     sync.RWMutex
	client *api.Client
	store  TokenStore
	token  string
	user   *model.User
}

// New builds a session over its own backend client, restoring any credential
// the store holds. Restored credentials are unvalidated until Me is called.
func New(baseURL, authHeader string, timeout time.Duration, store TokenStore) *Session {
	s := &Session{store: store}
	s.client = api.New(baseURL, authHeader, timeout, s)
	if store != nil {
		if token, err := store.Load(); err == nil {
			s.token = token
		}
	}
	return s
}

// Client exposes the underlying backend client so the data layer can share
// the session's credential.
func (s *Session) Client() *api.Client { return s.client }

// Token returns the current credential, or "" when signed out or when the
// stored token is a JWT that has visibly expired.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || auth.Expired(s.token, time.Now()) {
		return ""
	}
	return s.token
}

// User returns the authenticated identity, or nil.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated reports whether a validated identity is present.
func (s *Session) IsAuthenticated() bool {
	return s.User() != nil
}

// Login exchanges credentials for an authToken, persists it, and records the
// returned identity.
func (s *Session) Login(ctx context.Context, email, password string) (model.User, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := s.client.Post(ctx, "/auth/login", body, false)
	if err != nil {
		return model.User{}, err
	}

	var resp struct {
		AuthToken string     `json:"authToken"`
		User      model.User `json:"user"`
		Message   string     `json:"message"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return model.User{}, fmt.Errorf("%w: %v", api.ErrMalformed, err)
	}
	if resp.AuthToken == "" {
		return model.User{}, fmt.Errorf("%w: login response has no authToken", api.ErrMalformed)
	}

	s.mu.Lock()
	s.token = resp.AuthToken
	s.user = &resp.User
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Save(resp.AuthToken); err != nil {
			return resp.User, fmt.Errorf("credential saved in memory only: %w", err)
		}
	}
	return resp.User, nil
}

// Me validates the held credential against the backend and refreshes the
// identity. A rejected credential is discarded, matching the original
// startup behavior.
func (s *Session) Me(ctx context.Context) (model.User, error) {
	if s.Token() == "" {
		s.Logout()
		return model.User{}, &api.RequestError{Status: 401, Message: "no credential"}
	}

	raw, err := s.client.GetAuthed(ctx, "/auth/me")
	if err != nil {
		if api.IsStatus(err, 401) || api.IsStatus(err, 403) {
			s.Logout()
		}
		return model.User{}, err
	}

	var resp struct {
		User model.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return model.User{}, fmt.Errorf("%w: %v", api.ErrMalformed, err)
	}
	if resp.User.ID == "" && resp.User.Email == "" {
		return model.User{}, fmt.Errorf("%w: me response has no user", api.ErrMalformed)
	}

	s.mu.Lock()
	s.user = &resp.User
	s.mu.Unlock()
	return resp.User, nil
}

// Logout forgets the credential and identity, clearing persistent storage.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if s.store != nil {
		_ = s.store.Clear()
	}
}
