package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID       uuid.UUID
	EnterpriseID uuid.UUID
	Email        string
	IsCreator    bool
	JTI          string
}

// AccessTokenClaims represents the typed JWT issued to console clients.
type AccessTokenClaims struct {
	UserID       uuid.UUID `json:"user_id"`
	EnterpriseID uuid.UUID `json:"enterprise_id"`
	Email        string    `json:"email"`
	IsCreator    bool      `json:"is_creator"`
	jwt.RegisteredClaims
}
