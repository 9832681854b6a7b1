package entity

import "time"

type AdminUser struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
}

// AdminLoginData is what the token middleware puts in the request locals.
type AdminLoginData struct {
	ID        string
	Username  string
	TokenID   string
	ExpiresAt time.Time
}
