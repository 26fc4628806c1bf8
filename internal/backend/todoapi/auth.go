package todoapi

import (
	"context"
	"errors"
	"net/http"
)

// ErrNoToken is returned when a login or register response lacks a token.
var ErrNoToken = errors.New("server response did not include a token")

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token.
// A rejected login returns *APIError carrying the server's message.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, []string{"api", "users", "login"},
		loginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrNoToken
	}
	return resp.Token, nil
}

// Register creates an account and returns its session token.
func (c *Client) Register(ctx context.Context, username, email, password string) (string, error) {
	var resp tokenResponse
	err := c.do(ctx, http.MethodPost, []string{"api", "users", "register"},
		registerRequest{Username: username, Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrNoToken
	}
	return resp.Token, nil
}
