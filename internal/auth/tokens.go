// Package auth verifies bearer tokens and resolves the caller identity.
// Token issuance belongs to the external identity provider; the service only
// needs the shared HS256 secret to validate what that provider signed.
package auth

import (
	"errors"
	"strconv"
	"time"

	"clinic-invitations/internal/entities"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token is missing, malformed or fails validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims holds the JWT claims carried by access tokens. Subject is the actor
// id, Role distinguishes clinic and doctor callers.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// TokenVerifier validates HS256 access tokens against a shared secret,
// checking signature, expiry, issuer and audience.
type TokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenVerifier returns a verifier for tokens signed with secret by issuer
// for audience.
func NewTokenVerifier(secret []byte, issuer, audience string) *TokenVerifier {
	return &TokenVerifier{secret: secret, issuer: issuer, audience: audience}
}

// Verify parses tokenString and returns the caller identity.
func (v *TokenVerifier) Verify(tokenString string) (entities.Actor, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	}, jwt.WithIssuer(v.issuer), jwt.WithAudience(v.audience), jwt.WithExpirationRequired())
	if err != nil {
		return entities.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return entities.Actor{}, ErrInvalidToken
	}

	role := entities.Role(claims.Role)
	if role != entities.RoleClinic && role != entities.RoleDoctor {
		return entities.Actor{}, ErrInvalidToken
	}

	return entities.Actor{ID: id, Role: role}, nil
}

// Issue signs an access token for the given actor, valid for ttl. The real
// identity provider issues production tokens; this mirrors its format for
// tests and local development.
func (v *TokenVerifier) Issue(actor entities.Actor, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(actor.ID, 10),
			Issuer:    v.issuer,
			Audience:  jwt.ClaimStrings{v.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: string(actor.Role),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
