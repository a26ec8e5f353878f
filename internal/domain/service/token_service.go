package service

import (
	"mentalk/internal/domain/entity"

	"github.com/google/uuid"
)

// Claims carries the verified identity assertion extracted from a token.
type Claims struct {
	MemberID uuid.UUID
	Role     entity.Role
}

// TokenService defines the interface for issuing and verifying identity tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a new signed token asserting the member's identity and role.
	GenerateToken(memberID uuid.UUID, role entity.Role) (string, error)

	// ValidateToken reports whether the token's signature is valid and it has not expired.
	// It never returns an error; any failure simply yields false.
	ValidateToken(tokenString string) bool

	// ParseClaims extracts the verified claims from a token. It fails when the
	// signature is invalid, the token is malformed, or the token has expired.
	ParseClaims(tokenString string) (*Claims, error)
}
