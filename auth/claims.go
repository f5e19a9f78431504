package auth

import (
	jwt "github.com/golang-jwt/jwt/v4"
)

// Claims is the identity embedded in a session token.
type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ResetClaims is the payload of a password-reset token; it carries only
// the user id.
type ResetClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}
