package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rizaldy/keuanganku/internal/auth"
)

// AuthService is the access gate: it authenticates a user and yields the
// identity plus a session token used to scope all ledger operations.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// Session is the result of a successful login.
type Session struct {
	UserID   int64
	Username string
	Token    string
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login authenticates a user and returns a session. A credential mismatch
// surfaces as auth.ErrInvalidCredentials; callers re-prompt, nothing crashes.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("Login failed", "username", username)
		} else {
			s.logger.Error("Login error", "username", username, "error", err)
		}
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return nil, err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return &Session{UserID: user.ID, Username: user.Username, Token: token}, nil
}
