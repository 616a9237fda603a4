package auth

import (
	"context"

	"github.com/Kramer-Mwangala/Felixportfolio/internal/client/storage"
	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

//go:generate moq -out service_mock.go . Sessions

// Sessions manages the persisted admin session. It owns nothing but
// the token lifecycle: the API client itself stays stateless and
// takes the token as a plain parameter on every call.
type Sessions interface {
	// SaveSession persists the token and admin identity after login
	SaveSession(ctx context.Context, token string, admin api.Admin) error

	// Session returns the stored session.
	// Returns storage.ErrSessionNotFound when logged out.
	Session(ctx context.Context) (*storage.SessionData, error)

	// Token returns the stored bearer token, expired or not.
	// Expiry is only discovered by the backend answering 401.
	Token(ctx context.Context) (string, error)

	// IsAuthenticated reports whether a session exists and its token
	// has not visibly expired
	IsAuthenticated(ctx context.Context) (bool, error)

	// Logout deletes the local session. There is no server-side
	// revocation endpoint; the token simply ages out.
	Logout(ctx context.Context) error
}
