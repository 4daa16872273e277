package domain

import "time"

// Account is a registered user. The password is stored exactly as
// submitted; accounts are immutable once created and never deleted.
type Account struct {
	Username  string
	Password  string
	CreatedAt time.Time
}
