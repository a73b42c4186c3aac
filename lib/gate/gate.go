package gate

import "crypto/subtle"

// DefaultPassword is the shared secret used when none is configured.
const DefaultPassword = "Sampras"

// Gate is a single shared-password check in front of the editor. It keeps no
// state between attempts and does not rate limit.
type Gate struct {
	password string
	enabled  bool
}

func NewGate(password string, enabled bool) *Gate {
	if password == "" {
		password = DefaultPassword
	}
	return &Gate{password: password, enabled: enabled}
}

// Check reports whether candidate equals the configured password. A disabled
// gate accepts anything.
func (g *Gate) Check(candidate string) bool {
	if !g.enabled {
		return true
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
}

func (g *Gate) Enabled() bool {
	return g.enabled
}
