// Package session holds the client-side authentication state: whether the
// user is logged in and the token sent with every API request.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// ErrNotAuthenticated is returned by Token when no session exists.
var ErrNotAuthenticated = errors.New("not logged in")

// Authenticator performs the login and register network calls.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (string, error)
}

// Session is a snapshot of the authentication state.
type Session struct {
	Authenticated bool
	Token         string
}

// Manager owns the session. It is safe for concurrent use; the HTTP
// transport reads the token while commands log in and out.
type Manager struct {
	store *Store
	auth  Authenticator
	log   zerolog.Logger

	mu      sync.RWMutex
	sess    Session
	loading bool
}

// NewManager creates a Manager. Loading reports true until Restore runs.
func NewManager(store *Store, auth Authenticator, log zerolog.Logger) *Manager {
	return &Manager{
		store:   store,
		auth:    auth,
		log:     log,
		loading: true,
	}
}

// SetAuthenticator sets the backend used by Login and Register.
// The API client needs the manager as its token source, so the two are
// wired after construction.
func (m *Manager) SetAuthenticator(auth Authenticator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Restore loads a previously stored token. A missing token leaves the
// session logged out; an unreadable one is logged and ignored.
func (m *Manager) Restore() {
	tok, err := m.store.Load()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	switch {
	case err == nil:
		m.sess = Session{Authenticated: true, Token: tok.AccessToken}
	case errors.Is(err, os.ErrNotExist):
		m.sess = Session{}
	default:
		m.log.Warn().Err(err).Str("path", m.store.Path()).Msg("ignoring stored token")
		m.sess = Session{}
	}
}

// Loading reports whether the stored token has not been read yet.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Authenticated reports whether a session exists.
func (m *Manager) Authenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess.Authenticated
}

// Session returns a copy of the current session.
func (m *Manager) Session() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sess
}

// Token implements oauth2.TokenSource.
func (m *Manager) Token() (*oauth2.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.sess.Authenticated || m.sess.Token == "" {
		return nil, ErrNotAuthenticated
	}
	return &oauth2.Token{AccessToken: m.sess.Token, TokenType: TokenType}, nil
}

// Login authenticates with email and password, persists the returned token
// and marks the session authenticated. On failure the session is unchanged
// and the error carries the server's message.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	auth, err := m.authenticator()
	if err != nil {
		return err
	}
	token, err := auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.establish(token)
}

// Register creates an account and logs in with the returned token.
func (m *Manager) Register(ctx context.Context, username, email, password string) error {
	auth, err := m.authenticator()
	if err != nil {
		return err
	}
	token, err := auth.Register(ctx, username, email, password)
	if err != nil {
		return err
	}
	return m.establish(token)
}

// Logout removes the stored token and clears the session.
func (m *Manager) Logout() error {
	if err := m.store.Remove(); err != nil {
		return fmt.Errorf("failed to remove token: %w", err)
	}
	m.mu.Lock()
	m.sess = Session{}
	m.mu.Unlock()
	m.log.Debug().Msg("session cleared")
	return nil
}

func (m *Manager) authenticator() (Authenticator, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.auth == nil {
		return nil, errors.New("no authenticator configured")
	}
	return m.auth, nil
}

func (m *Manager) establish(token string) error {
	if err := m.store.Save(token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	m.mu.Lock()
	m.sess = Session{Authenticated: true, Token: token}
	m.loading = false
	m.mu.Unlock()
	m.log.Debug().Str("path", m.store.Path()).Msg("session established")
	return nil
}
