package model

import "github.com/google/uuid"

// TokenClaims is the decoded identity carried by an access token.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
}

// TokenManager issues and validates access tokens.
type TokenManager interface {
	Issue(userID uuid.UUID, username string) (string, error)
	Parse(token string) (TokenClaims, error)
}
