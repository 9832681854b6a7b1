package entity

import "time"

// RevokedToken marks an access token that was logged out before it expired.
type RevokedToken struct {
	TokenID   string
	Username  string
	ExpiresAt time.Time
}

func (r RevokedToken) TTL(now time.Time) time.Duration {
	if ttl := r.ExpiresAt.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}
