package services

import (
	"context"
	"database/sql"

	"babytracker/internal/dbx"
	eventsrepo "babytracker/internal/server/repositories/events"
	usersrepo "babytracker/internal/server/repositories/users"
)

// memoryRepoManager hands out fixed repositories regardless of the DB handle,
// so services can be tested without a database.
type memoryRepoManager struct {
	users  usersrepo.Repository
	events eventsrepo.Repository
}

func (m *memoryRepoManager) Users(db dbx.DBTX) usersrepo.Repository { return m.users }
func (m *memoryRepoManager) Events(db dbx.DBTX) eventsrepo.Repository { return m.events }
func (m *memoryRepoManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func newMemoryManager() *memoryRepoManager {
	return &memoryRepoManager{
		users:  usersrepo.NewMemoryRepository(),
		events: eventsrepo.NewMemoryRepository(),
	}
}
