// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Member is the core entity in the system, representing a person independent of
// any login mechanism. A member is identified by their phone number; the same
// phone number always resolves to the same member across repeated signups.
type Member struct {
	ID          uuid.UUID // The unique identifier for the member, immutable once assigned.
	Name        string    // The member's display name.
	PhoneNumber string    // The member's phone number, unique across all members.
	Role        Role      // The member's role. Defaults to USER; promoted to MENTOR explicitly.
	CreatedAt   time.Time // Timestamp of when this member record was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this member's data.
}

// PromoteToMentor transitions the member's role to MENTOR.
// Tokens issued before the promotion keep the old role until replaced.
func (m *Member) PromoteToMentor() {
	m.Role = RoleMentor
}
