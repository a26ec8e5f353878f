package usecase

import (
	"context"

	"mentalk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSessionInput defines the data required to publish a mentoring session.
// MentorID always comes from the authenticated identity, never from the request body.
type CreateSessionInput struct {
	MentorID    uuid.UUID
	SessionType string
	Title       string
	Content     string
}

// CreateSessionOutput returns the persisted mentoring session.
type CreateSessionOutput struct {
	Session *entity.MentoringSession
}

// SessionUsecase defines the interface for mentoring-session business operations.
type SessionUsecase interface {
	CreateSession(ctx context.Context, input CreateSessionInput) (*CreateSessionOutput, error)
}
