// Package users provides the credential store: username → bcrypt password
// hash. Rows are written by the seeding tool only.
package users

import (
	"context"

	"babytracker/internal/server/models"
)

type Repository interface {
	// GetByUsername returns the user with the exact username, or
	// common.ErrorNotFound.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Upsert inserts the user or, when the username already exists, replaces
	// the stored password hash. The persisted user is returned.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
}
