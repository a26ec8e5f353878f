package usecase

import (
	"context"

	"mentalk/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateEventInput defines the data required to publish an event.
// MentorID always comes from the authenticated identity, never from the request body.
type CreateEventInput struct {
	MentorID     uuid.UUID
	Title        string
	Description  string
	Content      string
	ThumbnailURL string
}

// CreateEventOutput returns the persisted event.
type CreateEventOutput struct {
	Event *entity.Event
}

// EventUsecase defines the interface for event business operations.
type EventUsecase interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error)
}
