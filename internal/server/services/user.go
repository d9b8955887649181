// Package services contains the server-side business logic: authentication,
// event CRUD, and window statistics.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"babytracker/internal/common"
	"babytracker/internal/server/auth"
	"babytracker/internal/server/models"
	"babytracker/internal/server/repositories/repomanager"
)

// UserService is the authenticator: it verifies credentials against the
// credential store and never exposes stored hashes.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService using the repository manager.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Login verifies the (username, password) pair. Unknown usernames and wrong
// passwords both yield common.ErrorUnauthorized so that user existence does
// not leak. The returned user carries no password hash.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, common.ErrorUnauthorized
	}
	return &models.User{ID: user.ID, Username: user.Username}, nil
}

// Upsert creates the user or replaces its password hash. It backs the
// out-of-band seeding tool; the API surface never creates users.
func (s *UserService) Upsert(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{ID: uuid.NewString(), Username: username, PasswordHash: hash}
	repo := s.repomanager.Users(s.db)
	u, err := repo.Upsert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error upserting user: %w", err)
	}
	return u, nil
}
