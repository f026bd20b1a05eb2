package entity

import "time"

// Token is a persisted bearer credential. At most one token exists per user.
type Token struct {
	ID        uint64
	Value     string
	UserID    uint64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// TokenClaims are the signed fields carried inside a token
type TokenClaims struct {
	ID          string   // jti
	Subject     string   // username
	Authorities []string // e.g. ROLE_ADMIN
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// IsExpired reports whether the claims have expired at now
func (c *TokenClaims) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
