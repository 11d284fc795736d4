package service

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rizaldy/keuanganku/internal/auth"
	"github.com/rizaldy/keuanganku/internal/storage/sqlite"
)

func setupAuth(t *testing.T) (*AuthService, *auth.JWTManager) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "keuanganku-auth-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	authenticator := auth.NewPasswordAuthenticator(store)
	require.NoError(t, authenticator.Seed(context.Background(), "karissa", "1"))

	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(authenticator, jwtManager, slog.Default()), jwtManager
}

func TestLogin(t *testing.T) {
	svc, jwtManager := setupAuth(t)
	ctx := context.Background()

	t.Run("seeded user can log in", func(t *testing.T) {
		session, err := svc.Login(ctx, "karissa", "1")
		require.NoError(t, err)
		require.NotZero(t, session.UserID)
		require.Equal(t, "karissa", session.Username)

		claims, err := jwtManager.Validate(session.Token)
		require.NoError(t, err)
		require.Equal(t, session.UserID, claims.UserID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "karissa", "2")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, err := svc.Login(ctx, "someone", "1")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
