// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mentalk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is returned when a local account is not found.
// This allows the application layer to handle specific outcomes without
// depending on database-specific errors.
var ErrAccountNotFound = errors.New("local account not found")

// AccountRepository defines the standard operations for local credential persistence.
type AccountRepository interface {
	// ExistsByEmail reports whether a local account with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// ExistsByMemberID reports whether the given member already has a local account.
	ExistsByMemberID(ctx context.Context, memberID uuid.UUID) (bool, error)

	// FindByEmail retrieves a local account by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.LocalAccount, error)

	// FindByMemberID retrieves the local account bound to the given member.
	FindByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.LocalAccount, error)

	// Create persists a new local account. The storage layer enforces the
	// uniqueness of email and member binding with unique indexes.
	Create(ctx context.Context, account *entity.LocalAccount) error

	// Update modifies an existing local account (e.g. password reset).
	Update(ctx context.Context, account *entity.LocalAccount) error
}
