// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one continuous authenticated device lineage for a user.
// Hash is an opaque rotating secret bound into refresh tokens: it is replaced
// exactly once per successful refresh, and the previous value becomes invalid
// the instant a new one is persisted. A user may hold many sessions.
type Session struct {
	ID        uuid.UUID // The unique ID for this session record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	Hash      string    // Rotating secret, compared byte-for-byte against refresh token claims.
	CreatedBy string    // Audit actor that created the record.
	UpdatedBy string    // Audit actor of the last rotation.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., sign-in time).
	UpdatedAt time.Time // Timestamp of the last hash rotation.
}
