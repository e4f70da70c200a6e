package repository

import (
	"context"
	"errors"
	"fmt"

	"kerjabantu-service/src/internal/entity"
)

var ErrSessionNotFound = errors.New("repository: session not found")

// ErrSessionUnreadable marks a stored blob that no longer decodes. It also
// matches ErrSessionNotFound so callers start the session over.
var ErrSessionUnreadable = fmt.Errorf("%w: unreadable state", ErrSessionNotFound)

// SessionRepository stores the persisted subset of a session under its id.
type SessionRepository interface {
	Load(ctx context.Context, sessionID string) (*entity.SessionState, error)
	Save(ctx context.Context, sessionID string, state entity.SessionState) error
	Delete(ctx context.Context, sessionID string) error
}

// CatalogRepository provides the reference data sessions start from.
type CatalogRepository interface {
	Load(ctx context.Context) (*entity.Catalog, error)
}
