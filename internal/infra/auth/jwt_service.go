// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"mentalk/config"
	"mentalk/internal/domain/entity"
	"mentalk/internal/domain/service"
)

// accessTokenTTL is the fixed lifetime of an identity token.
// Logout is client-side cookie deletion only; there is no server-side revocation,
// so the lifetime is kept to a single day.
const accessTokenTTL = 1440 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing identity tokens.
	ttl    time.Duration // Time-to-live for identity tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    accessTokenTTL,
	}, nil
}

// GenerateToken creates a signed token carrying the member id and role.
func (s *jwtService) GenerateToken(memberID uuid.UUID, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  memberID.String(),          // Subject (who the token is for)
		"role": role.String(),              // Role at issuance time
		"iat":  now.Unix(),                 // Issued At
		"exp":  now.Add(s.ttl).Unix(),      // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.secret))
}

// ValidateToken reports whether the token carries a valid signature and is not expired.
func (s *jwtService) ValidateToken(tokenString string) bool {
	_, err := s.ParseClaims(tokenString)

	return err == nil
}

// ParseClaims verifies the token and extracts its identity claims.
func (s *jwtService) ParseClaims(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse token claims")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.New("member id missing from token")
	}
	memberID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid member id format in token")
	}

	roleStr, ok := mapClaims["role"].(string)
	if !ok {
		return nil, errors.New("role missing from token")
	}
	role, ok := entity.RoleFromString(roleStr)
	if !ok {
		return nil, errors.New("unknown role in token")
	}

	return &service.Claims{MemberID: memberID, Role: role}, nil
}
