package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	apperrors "sebet/internal/errors"
)

// Identity is the verified caller taken from the token, never from the
// request body. The admin flag deliberately does not live here; privileged
// operations re-check it against the user record at call time.
type Identity struct {
	UID   string
	Email string
	Name  string
}

type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

type claims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Verify parses and validates a bearer token and returns the identity it
// proves. Any parse, signature, expiry or issuer failure maps to an
// unauthorized error.
func (v *Verifier) Verify(tokenString string) (*Identity, error) {
	if len(v.secret) == 0 {
		return nil, apperrors.NewUnavailableError("auth secret not configured", nil)
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}
	if !token.Valid || c.Subject == "" {
		return nil, apperrors.NewUnauthorizedError("invalid token")
	}

	return &Identity{
		UID:   c.Subject,
		Email: c.Email,
		Name:  c.Name,
	}, nil
}
