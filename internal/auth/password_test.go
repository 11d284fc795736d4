package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rizaldy/keuanganku/internal/models"
)

// fakeUserStore is an in-memory storage.UserStore for authenticator tests.
type fakeUserStore struct {
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) CreateUser(_ context.Context, user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.Username] = &copied
	return nil
}

func (f *fakeUserStore) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	a := NewPasswordAuthenticator(store)

	require.NoError(t, a.Seed(ctx, "karissa", "1"))

	t.Run("valid credentials", func(t *testing.T) {
		user, err := a.Authenticate(ctx, "karissa", "1")
		require.NoError(t, err)
		require.Equal(t, "karissa", user.Username)
		require.NotZero(t, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "karissa", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := a.Authenticate(ctx, "nobody", "1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSeedIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	a := NewPasswordAuthenticator(store)

	require.NoError(t, a.Seed(ctx, "karissa", "1"))
	require.NoError(t, a.Seed(ctx, "karissa", "1"))

	require.Len(t, store.users, 1)

	// the original hash survives the second seed call
	user, err := a.Authenticate(ctx, "karissa", "1")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)
}

func TestPasswordsStoredHashed(t *testing.T) {
	ctx := context.Background()
	store := newFakeUserStore()
	a := NewPasswordAuthenticator(store)

	require.NoError(t, a.Seed(ctx, "karissa", "1"))
	require.NotEqual(t, "1", store.users["karissa"].PasswordHash)
}
