package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Identity carries the user fields embedded in token claims. It is derived
// from the stored user at login time and never persisted itself.
type Identity struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
}

// Claims represents the validated claims extracted from a token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// Email doubles as the token subject.
	Email string `json:"sub,omitempty"`

	// DisplayName is the user's full name, carried for response shaping
	// without a store round-trip.
	DisplayName string `json:"name,omitempty"`

	// TokenType indicates the purpose of the token ("access" or "refresh").
	// Used to prevent token misuse across different contexts.
	TokenType string `json:"type,omitempty"`

	// Standard registered JWT claims
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

// Identity returns the identity claims, dropping the timestamp fields.
// Refresh re-issues an access token from exactly this subset.
func (c *Claims) Identity() Identity {
	return Identity{
		UserID:      c.UserID,
		Email:       c.Email,
		DisplayName: c.DisplayName,
	}
}

// JWTService defines operations for managing JWT authentication tokens.
// Access and refresh tokens form independent classes: each is signed with
// its own secret and lifetime, and validation of one class never accepts
// the other.
type JWTService interface {
	// GenerateToken creates a signed JWT access token carrying the identity.
	GenerateToken(ctx context.Context, identity Identity) (string, error)

	// ValidateToken validates an access token string against the access
	// secret and extracts the claims. Fails with ErrExpiredToken or
	// ErrInvalidToken on expiry, signature mismatch, or malformed input.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken creates a signed JWT refresh token carrying the
	// identity. Refresh tokens have a longer lifetime and are used solely
	// to obtain new access tokens.
	GenerateRefreshToken(ctx context.Context, identity Identity) (string, error)

	// ValidateRefreshToken validates a refresh token string against the
	// refresh secret and extracts the claims.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}
