// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mentalk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMemberNotFound is a domain-specific error returned when a member is not found.
var ErrMemberNotFound = errors.New("member not found")

// MemberRepository defines the standard operations for member persistence.
// The application layer will depend on this interface, not the concrete implementation.
type MemberRepository interface {
	// FindByID retrieves a single member by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByPhoneNumber retrieves a single member by their phone number.
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.Member, error)

	// Create persists a new member entity to the storage.
	Create(ctx context.Context, member *entity.Member) error

	// Update modifies an existing member entity in the storage.
	Update(ctx context.Context, member *entity.Member) error
}
