package auth

import (
	"context"

	"github.com/rizaldy/keuanganku/internal/models"
)

// Authenticator defines the interface for the access gate. The abstraction
// allows swapping credential schemes without changing the service layer.
type Authenticator interface {
	// Authenticate verifies the username and password, returning the matching
	// user if valid. Returns ErrInvalidCredentials when no user matches.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// Seed ensures the default account exists. Calling it repeatedly leaves
	// exactly one such user.
	Seed(ctx context.Context, username, password string) error
}
