package ports

import (
	"context"
	"errors"

	"coup/internal/domain"
)

// ErrSessionNotFound is returned by Load when no document exists for a code.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists session documents keyed by session code. Semantics
// are read-then-write with last write winning; the engine serializes
// read-modify-write cycles per code itself.
type SessionStore interface {
	// Load fetches the session document for a code.
	// Returns ErrSessionNotFound if no such session exists.
	Load(ctx context.Context, code string) (*domain.Session, error)

	// Save writes the full session document.
	Save(ctx context.Context, session *domain.Session) error
}
