package testutil

import (
	"context"
	"sync"

	"taskmgr/internal/service"
)

// FakeAuthenticator is an in-memory session.Authenticator.
// Accounts maps email to password; Login succeeds only for a match.
type FakeAuthenticator struct {
	mu       sync.Mutex
	Accounts map[string]string

	// Token is returned on success. Defaults to "test-token".
	Token string

	// Err, if set, is returned by every call.
	Err error

	LoginCalls    int
	RegisterCalls int
}

// AuthError mimics the API's rejection carrying a server message.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// Unwrap marks the error as a server rejection.
func (e *AuthError) Unwrap() error { return service.ErrRejected }

// NewFakeAuthenticator creates a FakeAuthenticator with no accounts.
func NewFakeAuthenticator() *FakeAuthenticator {
	return &FakeAuthenticator{Accounts: make(map[string]string)}
}

func (f *FakeAuthenticator) token() string {
	if f.Token == "" {
		return "test-token"
	}
	return f.Token
}

// Login implements session.Authenticator.
func (f *FakeAuthenticator) Login(ctx context.Context, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LoginCalls++
	if f.Err != nil {
		return "", f.Err
	}
	if pw, ok := f.Accounts[email]; !ok || pw != password {
		return "", &AuthError{Message: "Invalid credentials"}
	}
	return f.token(), nil
}

// Register implements session.Authenticator.
func (f *FakeAuthenticator) Register(ctx context.Context, username, email, password string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls++
	if f.Err != nil {
		return "", f.Err
	}
	if _, ok := f.Accounts[email]; ok {
		return "", &AuthError{Message: "User already exists"}
	}
	f.Accounts[email] = password
	return f.token(), nil
}
