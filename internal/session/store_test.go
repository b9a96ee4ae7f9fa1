package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skybook/skybook/internal/models"
)

func TestMemoryStore_RestoreEmpty(t *testing.T) {
	store := NewMemoryStore()

	user, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMemoryStore_SetThenRestore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	want := &models.UserSession{ID: 7, Name: "Jo", Email: "jo@example.com"}
	require.NoError(t, store.Set(ctx, want))

	got, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Restore hands out a copy, not the stored value.
	got.Name = "mutated"
	again, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Jo", again.Name)
}

func TestMemoryStore_Login(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, err := store.Login(ctx, "Jo Smith", "jo@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Jo Smith", first.Name)
	assert.Equal(t, "jo@example.com", first.Email)

	second, err := store.Login(ctx, "", "anon@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "User", second.Name)

	// The last login is the current session.
	current, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, current)
}

func TestMemoryStore_Logout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Login(ctx, "Jo", "jo@example.com")
	require.NoError(t, err)

	require.NoError(t, store.Logout(ctx))

	user, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestMemoryStore_IDsKeepCountingAfterLogout(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.Login(ctx, "A", "a@example.com")
	require.NoError(t, err)
	require.NoError(t, store.Logout(ctx))

	again, err := store.Login(ctx, "B", "b@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, again.ID)
}
