// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mentalk/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a member to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput defines the data required to reset an account password.
type ResetPasswordInput struct {
	Email       string
	NewPassword string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	Member      *entity.Member
}

// FindEmailOutput returns the email recovered from a phone number lookup.
type FindEmailOutput struct {
	Email string
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// CheckEmailInUse returns ErrEmailAlreadyInUse when the email is already registered.
	CheckEmailInUse(ctx context.Context, email string) error

	// IsEmailExists reports whether the email belongs to a registered account.
	IsEmailExists(ctx context.Context, email string) (bool, error)

	// Login verifies the credentials and issues an access token.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// FindEmailByPhoneNumber recovers the login email for the member holding the phone number.
	FindEmailByPhoneNumber(ctx context.Context, phoneNumber string) (*FindEmailOutput, error)

	// ResetPassword replaces the stored password hash for the account with the given email.
	ResetPassword(ctx context.Context, input ResetPasswordInput) error
}
