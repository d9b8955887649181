package users

import (
	"context"
	"sync"

	"babytracker/internal/common"
	"babytracker/internal/server/models"
)

// MemoryRepository is a map-backed Repository used in tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]models.User)}
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &user, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.Username]; ok {
		user.ID = existing.ID
	}
	r.users[user.Username] = *user
	return user, nil
}
