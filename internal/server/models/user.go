package models

import "time"

// User is a household member allowed to log events. Users are created by the
// seeding tool, never through the API.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}
