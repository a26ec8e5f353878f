// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mentalk/internal/domain/entity"
)

// SessionRepository defines the standard operations for mentoring session persistence.
type SessionRepository interface {
	// Create persists a new mentoring session.
	Create(ctx context.Context, session *entity.MentoringSession) error
}
