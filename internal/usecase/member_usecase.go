package usecase

import (
	"context"

	"mentalk/internal/domain/entity"

	"github.com/google/uuid"
)

// SignupInput defines the data required to register a new member with a local account.
type SignupInput struct {
	Name        string
	PhoneNumber string
	Email       string
	Password    string
}

// SignupOutput returns the newly registered member's basic information.
type SignupOutput struct {
	Member *entity.Member
}

// PromoteOutput returns the promoted member together with a fresh access token
// carrying the new role.
type PromoteOutput struct {
	AccessToken string
	Member      *entity.Member
}

// MemberUsecase defines the interface for member-related business operations.
type MemberUsecase interface {
	// Signup registers a member and their local account in a single transaction.
	// A member already known by phone number is reused; a member that already
	// owns a local account is rejected.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// PromoteToMentor upgrades the member's role to MENTOR and issues a new
	// access token reflecting it.
	PromoteToMentor(ctx context.Context, memberID uuid.UUID) (*PromoteOutput, error)
}
