package domain

import "time"

// AppSession is the revocable bearer-session record looked up on every
// authenticated request. Expired sessions are deleted lazily when found.
type AppSession struct {
	SessionID       string            `json:"session_id" bson:"session_id"`
	UserID          string            `json:"user_id" bson:"user_id"`
	Platform        string            `json:"platform" bson:"platform"`
	PlatformDetails map[string]string `json:"platform_details,omitempty" bson:"platform_details,omitempty"`
	ExpiresAt       time.Time         `json:"expires_at" bson:"expires_at"`
	CreatedAt       time.Time         `json:"created_at" bson:"created_at"`
}

// Expired reports whether the session has passed its expiry at the given
// instant.
func (s *AppSession) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
