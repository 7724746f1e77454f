package authdomain

import (
	"time"
)

// Claims represents the domain model for authentication claims.
type Claims struct {
	UserID    string
	Role      Role
	Issuer    string
	TokenID   string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

// IsExpired checks if the claims have expired.
func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

// HasAnyRole reports whether the claims carry one of roles.
func (c *Claims) HasAnyRole(roles ...Role) bool {
	for _, r := range roles {
		if c.Role == r {
			return true
		}
	}
	return false
}
