// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionType distinguishes how a mentoring session is held.
type SessionType string

const (
	// SessionTypeOnline indicates a remote session.
	SessionTypeOnline SessionType = "ONLINE"
	// SessionTypeOffline indicates an in-person session.
	SessionTypeOffline SessionType = "OFFLINE"
)

// String returns the string representation of the SessionType.
func (s SessionType) String() string {
	return string(s)
}

// IsValid checks if the SessionType is a valid value.
func (s SessionType) IsValid() bool {
	switch s {
	case SessionTypeOnline, SessionTypeOffline:
		return true
	default:
		return false
	}
}

// MentoringSession represents a mentoring session offered by a mentor.
// The mentor is always the authenticated member; it is never taken from request data.
type MentoringSession struct {
	ID          uuid.UUID   // The unique ID of the session.
	MentorID    uuid.UUID   // The member who hosts this session. Must hold the MENTOR role.
	SessionType SessionType // Whether the session is held online or offline.
	Title       string      // The session title.
	Content     string      // The session description body.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
