package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/storage"
	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

// Service persists the admin session in local storage. Tokens are
// stored as received; the backend has no refresh mechanism, so an
// expired token is simply deleted at the next login or logout.
type Service struct {
	store storage.SessionStorage
}

// Compile-time check that Service implements Sessions
var _ Sessions = (*Service)(nil)

func NewService(store storage.SessionStorage) *Service {
	return &Service{store: store}
}

// SaveSession persists the token and admin identity after login.
func (s *Service) SaveSession(ctx context.Context, token string, admin api.Admin) error {
	session := &storage.SessionData{
		Token:   token,
		Admin:   admin,
		SavedAt: time.Now().Unix(),
	}
	if err := s.store.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Session returns the stored session.
func (s *Service) Session(ctx context.Context) (*storage.SessionData, error) {
	return s.store.GetSession(ctx)
}

// Token returns the stored bearer token.
func (s *Service) Token(ctx context.Context) (string, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		return "", err
	}
	return session.Token, nil
}

// IsAuthenticated reports whether a session exists and its token has
// not visibly expired. A token without a readable exp claim counts as
// valid here; the backend remains the authority either way.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	expiresAt, err := TokenExpiry(session.Token)
	if err != nil {
		return true, nil
	}
	return time.Now().Before(expiresAt), nil
}

// Logout deletes the local session.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.DeleteSession(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// TokenExpiry decodes the JWT exp claim without verifying the
// signature. The client has no key material and does not need any:
// this is display/warning information, the server decides validity.
func TokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("failed to parse token: %w", err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, fmt.Errorf("token has no expiration claim")
	}
	return exp.Time, nil
}
