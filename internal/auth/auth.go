// Package auth verifies recruiter bearer tokens and carries the recruiter
// identity through request contexts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Recruiter is the authenticated actor behind an admin request.
type Recruiter struct {
	ID    string
	Email string
}

type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret []byte
	clock  func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &Verifier{secret: []byte(secret), clock: time.Now}, nil
}

// Issue signs an HS256 token for r. Used by the admin tooling and tests.
func (v *Verifier) Issue(r Recruiter, ttl time.Duration) (string, error) {
	now := v.clock()
	claims := Claims{
		Email: r.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   r.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

func (v *Verifier) Verify(tokenString string) (Recruiter, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(v.clock),
	)
	if err != nil {
		return Recruiter{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || strings.TrimSpace(claims.Subject) == "" {
		return Recruiter{}, ErrInvalidToken
	}
	return Recruiter{ID: claims.Subject, Email: claims.Email}, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

type recruiterKey struct{}

func WithRecruiter(ctx context.Context, r Recruiter) context.Context {
	return context.WithValue(ctx, recruiterKey{}, r)
}

func RecruiterFrom(ctx context.Context) (Recruiter, bool) {
	r, ok := ctx.Value(recruiterKey{}).(Recruiter)
	return r, ok
}
