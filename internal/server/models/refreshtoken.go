package models

import "time"

// RefreshToken is a server-stored, single-use token that can be traded for
// a new access token until Expires.
type RefreshToken struct {
	ID        string
	UserID    string
	Token     string
	Expires   time.Time
	CreatedAt time.Time
}

// Expired reports whether the token can no longer be redeemed at now.
// A token is still valid at the exact instant it expires.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.Expires)
}

// Remaining is the validity left at now, never negative.
func (t *RefreshToken) Remaining(now time.Time) time.Duration {
	if d := t.Expires.Sub(now); d > 0 {
		return d
	}
	return 0
}
