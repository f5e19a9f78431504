package auth

import (
	"testing"
	"time"

	"coursecatalog/models"

	jwt "github.com/golang-jwt/jwt/v4"
)

const testSecret = "test-secret"

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &models.User{
		ID:    "user-1",
		Email: "a@x.com",
		Role:  models.RoleStudent,
	}

	token, err := CreateAccessToken(user, testSecret)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	claims, err := VerifyAccessToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user id: got %q, want %q", claims.UserID, user.ID)
	}
	if claims.Role != user.Role {
		t.Errorf("role: got %q, want %q", claims.Role, user.Role)
	}
	if claims.Email != user.Email {
		t.Errorf("email: got %q, want %q", claims.Email, user.Email)
	}
}

func TestVerifyAccessTokenRejects(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "a@x.com", Role: models.RoleStudent}

	valid, err := CreateAccessToken(user, testSecret)
	if err != nil {
		t.Fatalf("CreateAccessToken: %v", err)
	}

	expired := signedToken(t, &Claims{
		UserID: user.ID,
		Role:   user.Role,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}, testSecret)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other-secret"},
		{name: "expired token", token: expired, secret: testSecret},
		{name: "garbage token", token: "not.a.token", secret: testSecret},
		{name: "tampered token", token: valid + "x", secret: testSecret},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := VerifyAccessToken(test.token, test.secret); err == nil {
				t.Error("expected verification to fail")
			}
		})
	}
}

func TestVerifyAccessTokenRejectsNonHMAC(t *testing.T) {
	// An unsigned token claims alg "none"; the keyfunc must refuse it.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{UserID: "user-1"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := VerifyAccessToken(signed, testSecret); err == nil {
		t.Error("expected none-algorithm token to be rejected")
	}
}

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := CreateResetToken("user-7", testSecret)
	if err != nil {
		t.Fatalf("CreateResetToken: %v", err)
	}

	userID, err := VerifyResetToken(token, testSecret)
	if err != nil {
		t.Fatalf("VerifyResetToken: %v", err)
	}
	if userID != "user-7" {
		t.Errorf("user id: got %q, want %q", userID, "user-7")
	}

	if _, err := VerifyResetToken(token, "other-secret"); err == nil {
		t.Error("expected wrong secret to fail")
	}
}

func signedToken(t *testing.T, claims jwt.Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return signed
}
