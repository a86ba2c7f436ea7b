package session

import (
	"context"
	"testing"
	"time"

	"github.com/fjod/go_pos/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Get(ctx, "register-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	s := Session{Username: "manager", Role: domain.RoleAdmin, LoggedInAt: time.Now()}
	require.NoError(t, store.Save(ctx, "register-1", s))

	got, err := store.Get(ctx, "register-1")
	require.NoError(t, err)
	assert.Equal(t, domain.Principal{Username: "manager", Role: domain.RoleAdmin}, got.Principal())

	require.NoError(t, store.Delete(ctx, "register-1"))
	_, err = store.Get(ctx, "register-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
