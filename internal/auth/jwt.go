// Package auth holds the credential primitives the server actually owns:
// HS256 access tokens for the REST surface and API-key generation/hashing
// for agents. Interactive login and identity federation live outside this
// system — the REST layer only resolves a bearer token to its claims.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// accessTokenDuration defines how long an access token remains valid.
	// Tokens are minted by the external identity service; this bound is
	// enforced again locally on issuance (seed command, tests).
	accessTokenDuration = 12 * time.Hour
)

// Claims holds the custom JWT claims embedded in every access token.
// Standard claims (exp, iat, iss) are included via jwt.RegisteredClaims.
type Claims struct {
	jwt.RegisteredClaims

	// UserID is the UUID of the authenticated user.
	UserID string `json:"uid"`

	// OrgID scopes every request — all REST routes filter by it.
	OrgID string `json:"org"`

	// Role is the user's role at token issuance time.
	Role string `json:"role"`
}

// JWTManager handles HS256 signing and verification of access tokens.
type JWTManager struct {
	secret []byte
	issuer string
}

// NewJWTManager creates a JWTManager with the given shared secret.
// The secret must match the one used by the token-minting service.
func NewJWTManager(secret, issuer string) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("auth: jwt secret is required")
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer}, nil
}

// IssueAccessToken signs a new access token for the given identity.
func (m *JWTManager) IssueAccessToken(userID, orgID uuid.UUID, role string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenDuration)),
		},
		UserID: userID.String(),
		OrgID:  orgID.String(),
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing access token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses and verifies a token string, returning its
// claims. The signing method is pinned to HS256 — tokens signed with any
// other algorithm are rejected.
func (m *JWTManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		return nil, fmt.Errorf("auth: invalid access token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("auth: invalid access token")
	}
	return claims, nil
}
