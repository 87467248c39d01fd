// Package jwtx verifies access tokens minted by the external identity
// provider. orgdesk never issues tokens itself; it only checks signatures
// and claims on inbound requests.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the access-token claims orgdesk cares about. Subject is the
// caller's member id; OrgID scopes every organization-bound operation.
type Claims struct {
	jwt.RegisteredClaims

	// OrgID is the organization the caller belongs to.
	OrgID string `json:"org_id,omitempty"`

	// Role is the caller's member role ("admin" or "member").
	Role string `json:"role,omitempty"`

	// Scopes like "admin:read admin:write", already split.
	Scopes []string `json:"scopes,omitempty"`

	// Email and FullName mirror the caller's profile for attribution.
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
}

// NewAccessClaims builds minimally-correct claims. Used by tests and the
// e2e harness; production tokens come from the identity provider.
func NewAccessClaims(
	subject, orgID, role string,
	scopes []string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		OrgID:  orgID,
		Role:   role,
		Scopes: scopes,
	}
}

// ValidateIssuer checks the iss claim against expected. Empty expected
// means nothing to enforce.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected != "" && c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token is inside its exp/nbf window.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
