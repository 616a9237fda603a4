package storage

import (
	"context"

	"github.com/Kramer-Mwangala/Felixportfolio/pkg/api"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage is the local persistence layer for the admin
// session. The bearer token is the only credential this client ever
// stores; entities are never cached locally.
type SessionStorage interface {
	// SaveSession stores the session, replacing any previous one
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound when logged out.
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}

// SessionData is what survives between CLI invocations: the bearer
// token plus the admin identity returned at login, for display only.
type SessionData struct {
	Token   string    `json:"token"`
	Admin   api.Admin `json:"admin"`
	SavedAt int64     `json:"saved_at"` // unix seconds
}
