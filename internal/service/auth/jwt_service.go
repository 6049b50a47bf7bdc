package auth

import (
	"context"

	"github.com/google/uuid"
)

// Claims holds the validated claims extracted from a session token.
type Claims struct {
	UserID uuid.UUID
}

// JWTService defines the interface for session-token operations.
type JWTService interface {
	// GenerateToken creates a signed session token for the given user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns
	// its claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}
