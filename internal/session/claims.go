package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the subset of token claims shown to the user.
// The signature is not verified; the values are informational only.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// Claims decodes the session token as a JWT. ok is false when there is no
// session or the token is opaque.
func (m *Manager) Claims() (Claims, bool) {
	sess := m.Session()
	if !sess.Authenticated {
		return Claims{}, false
	}
	return ParseClaims(sess.Token)
}

// ParseClaims extracts display claims from an unverified JWT.
// The subject falls back to the "id", "_id" and "user_id" claims used by
// common Node backends.
func ParseClaims(token string) (Claims, bool) {
	mc := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mc); err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil && sub != "" {
		c.Subject = sub
	} else {
		for _, key := range []string{"id", "_id", "user_id"} {
			if v, ok := mc[key].(string); ok && v != "" {
				c.Subject = v
				break
			}
			if user, ok := mc["user"].(map[string]any); ok {
				if v, ok := user[key].(string); ok && v != "" {
					c.Subject = v
					break
				}
			}
		}
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		c.IssuedAt = iat.Time
	}
	return c, true
}
