package session

import (
	"context"
	"errors"
	"time"

	"github.com/fjod/go_pos/internal/domain"
)

var ErrSessionNotFound = errors.New("no active session for register")

// Session is the already-authenticated operator bound to a register. The
// engine never sees credentials; the login layer verifies them and hands the
// resulting principal here.
type Session struct {
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	LoggedInAt time.Time   `json:"logged_in_at"`
}

func (s Session) Principal() domain.Principal {
	return domain.Principal{Username: s.Username, Role: s.Role}
}

// Store keeps the active session per register id.
type Store interface {
	Save(ctx context.Context, registerID string, s Session) error
	Get(ctx context.Context, registerID string) (Session, error)
	Delete(ctx context.Context, registerID string) error
}
