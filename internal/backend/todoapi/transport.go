package todoapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

const (
	// HeaderAuthToken carries the session token.
	HeaderAuthToken = "auth-token"

	// HeaderRequestID correlates a request with debug logs.
	HeaderRequestID = "X-Request-ID"
)

// authTransport attaches the current session token and a request id.
// The token is read on every request so a login earlier in the same
// process is picked up.
type authTransport struct {
	source oauth2.TokenSource
	base   http.RoundTripper
	log    zerolog.Logger
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	if r.Header.Get(HeaderRequestID) == "" {
		r.Header.Set(HeaderRequestID, uuid.NewString())
	}

	if t.source != nil {
		tok, err := t.source.Token()
		switch {
		case err != nil:
			t.log.Debug().Err(err).Msg("sending request without session token")
		case tok.AccessToken != "":
			r.Header.Set(HeaderAuthToken, tok.AccessToken)
		}
	}

	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(r)
}
