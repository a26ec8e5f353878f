// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocalAccount represents a local email/password credential bound 1:1 to a Member.
// A member has at most one local account; an email belongs to at most one account.
// A member may exist without a local account (e.g. future federated logins).
type LocalAccount struct {
	ID             uuid.UUID // The unique ID for this credential record itself.
	MemberID       uuid.UUID // Links this credential to the Member it belongs to. Unique.
	Email          string    // The login email, unique across all local accounts.
	HashedPassword string    // The bcrypt-hashed password. Plaintext is never stored.
	CreatedAt      time.Time // Timestamp of when this credential was created.
	UpdatedAt      time.Time // Timestamp of the last modification (e.g. password reset).
}

// ChangePassword replaces the stored hash with a new one.
func (a *LocalAccount) ChangePassword(hashedPassword string) {
	a.HashedPassword = hashedPassword
}
