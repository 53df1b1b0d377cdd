// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"gatekeeper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when a session row does not exist.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines the standard operations for session persistence.
// Sessions carry the rotating hash that binds refresh tokens to a device
// lineage; the store must guarantee per-row atomicity of UpdateHash.
type SessionRepository interface {
	// Create persists a new session row.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// UpdateHash overwrites the session's rotating hash. The previous hash is
	// unrecoverable after this call.
	UpdateHash(ctx context.Context, id uuid.UUID, hash string, updatedBy string) error

	// Delete removes a session row, ending the lineage. Returns
	// ErrSessionNotFound when no row matched.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUserID removes every session belonging to a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
