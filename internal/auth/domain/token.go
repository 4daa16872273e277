package domain

import "time"

// SessionToken binds an opaque bearer token to a username. Tokens never
// expire and are never revoked; they live for the process lifetime.
type SessionToken struct {
	Token    string
	Username string
	IssuedAt time.Time
}
