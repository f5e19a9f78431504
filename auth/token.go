package auth

import (
	"fmt"
	"time"

	"coursecatalog/models"

	jwt "github.com/golang-jwt/jwt/v4"
)

// TokenExpiry is the fixed lifetime of both session and reset tokens.
const TokenExpiry = time.Hour

// CreateAccessToken issues a signed HS256 session token embedding the
// user's id, role, and email.
func CreateAccessToken(user *models.User, secret string) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// CreateResetToken issues a signed token bound to the user id only, used
// once in a password-reset link.
func CreateResetToken(userID, secret string) (string, error) {
	claims := &ResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyAccessToken checks signature and expiry and returns the embedded
// identity.
func VerifyAccessToken(requestToken, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, hmacKeyFunc(secret))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// VerifyResetToken checks signature and expiry of a password-reset token
// and returns the user id it is bound to.
func VerifyResetToken(requestToken, secret string) (string, error) {
	claims := &ResetClaims{}
	token, err := jwt.ParseWithClaims(requestToken, claims, hmacKeyFunc(secret))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.UserID, nil
}

func hmacKeyFunc(secret string) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}
}
