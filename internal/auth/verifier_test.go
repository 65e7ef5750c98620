package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "sebet/internal/errors"
)

const (
	testSecret = "test-secret"
	testIssuer = "sebet-auth"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return signed
}

func baseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   "user-1",
		"iss":   testIssuer,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"email": "user@example.com",
		"name":  "Ali",
	}
}

func TestVerify_ValidToken(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	identity, err := v.Verify(signToken(t, testSecret, baseClaims()))

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if identity.UID != "user-1" {
		t.Errorf("expected uid user-1, got %s", identity.UID)
	}
	if identity.Email != "user@example.com" || identity.Name != "Ali" {
		t.Errorf("expected profile claims to carry over, got %+v", identity)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	_, err := v.Verify(signToken(t, "another-secret", baseClaims()))

	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	claims := baseClaims()
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	_, err := v.Verify(signToken(t, testSecret, claims))

	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestVerify_MissingExpiry(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	claims := baseClaims()
	delete(claims, "exp")

	_, err := v.Verify(signToken(t, testSecret, claims))

	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestVerify_WrongIssuer(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	claims := baseClaims()
	claims["iss"] = "someone-else"

	_, err := v.Verify(signToken(t, testSecret, claims))

	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestVerify_MissingSubject(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	claims := baseClaims()
	delete(claims, "sub")

	_, err := v.Verify(signToken(t, testSecret, claims))

	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestVerify_GarbageToken(t *testing.T) {
	v := NewVerifier(testSecret, testIssuer)

	_, err := v.Verify("not.a.token")

	if _, ok := apperrors.IsUnauthorizedError(err); !ok {
		t.Errorf("expected UnauthorizedError, got %T", err)
	}
}

func TestVerify_SecretNotConfigured(t *testing.T) {
	v := NewVerifier("", testIssuer)

	_, err := v.Verify(signToken(t, testSecret, baseClaims()))

	if _, ok := apperrors.IsUnavailableError(err); !ok {
		t.Errorf("expected UnavailableError, got %T", err)
	}
}
