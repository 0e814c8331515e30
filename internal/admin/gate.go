package admin

import "errors"

// ErrAuthFailed is the one generic failure surfaced to the operator.
// It deliberately does not distinguish a wrong password from any other
// cause.
var ErrAuthFailed = errors.New("authentication failed")

// Gate holds the configured secret and the ephemeral admin session
// state. The session flag lives in memory only and is never persisted.
type Gate struct {
	secret        string
	authenticated bool
}

// NewGate creates a gate with the given secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authenticate compares the candidate against the secret by exact
// string equality. On success the session becomes authenticated; on
// failure the state is unchanged and ErrAuthFailed is returned. The
// candidate is not retained either way.
func (g *Gate) Authenticate(candidate string) error {
	if candidate != g.secret {
		return ErrAuthFailed
	}
	g.authenticated = true
	return nil
}

// Authenticated reports whether the session is currently authenticated.
func (g *Gate) Authenticated() bool {
	return g.authenticated
}

// Logout unconditionally ends the admin session.
func (g *Gate) Logout() {
	g.authenticated = false
}
