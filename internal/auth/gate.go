package auth

import "github.com/fjod/go_pos/internal/domain"

// Gate answers the single authorization question the engine ever asks:
// may this principal perform a privileged operation. Authentication itself
// (credentials, lockout) lives outside the engine.
type Gate struct {
	privileged domain.Role
}

// NewGate returns a gate treating the admin role as privileged.
func NewGate() Gate {
	return Gate{privileged: domain.RoleAdmin}
}

func (g Gate) IsPrivileged(p domain.Principal) bool {
	return p.Role == g.privileged
}
