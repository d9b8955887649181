// Package repomanager wires repositories to a database handle and owns
// schema migrations.
package repomanager

import (
	"context"
	"database/sql"

	"babytracker/internal/dbx"
	"babytracker/internal/server/repositories/events"
	"babytracker/internal/server/repositories/users"
)

// RepositoryManager is a factory producing repositories bound to an
// arbitrary DBTX, so callers can use the same repository code inside and
// outside a transaction.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Events(db dbx.DBTX) events.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
