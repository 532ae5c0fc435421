package auth

import (
	"crypto/subtle"
)

// Gate authorizes privileged requests with a single shared secret. The
// secret is loaded once at startup; an empty secret disables the privileged
// path entirely (fail-closed), so an empty provided key never matches.
type Gate struct {
	secret string
}

// NewGate creates a gate with the configured shared secret
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authorize reports whether the provided key grants privileged access.
// Comparison is byte-exact and case-sensitive.
func (g *Gate) Authorize(providedKey string) bool {
	if g.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(providedKey), []byte(g.secret)) == 1
}
