// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"mentalk/internal/domain/entity"
)

// EventRepository defines the standard operations for event persistence.
type EventRepository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *entity.Event) error
}
