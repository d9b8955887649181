// Package events provides the event store: one row per recorded caregiving
// occurrence, keyed by generated identifier.
package events

import (
	"context"
	"time"

	"babytracker/internal/server/models"
)

type Repository interface {
	// Create persists a new event.
	Create(ctx context.Context, event *models.Event) error

	// GetByID returns the event with the given identifier, or
	// common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Event, error)

	// Update overwrites the mutable columns of the event in place.
	// Returns common.ErrorNotFound when no row has the event's identifier.
	Update(ctx context.Context, event *models.Event) error

	// Delete removes the event. Returns common.ErrorNotFound when no row
	// has that identifier.
	Delete(ctx context.Context, id string) error

	// SelectRecent returns up to limit events ordered by timestamp
	// descending.
	SelectRecent(ctx context.Context, limit int) ([]*models.Event, error)

	// SelectSince returns every event with timestamp >= since, ordered by
	// timestamp ascending. There is no upper bound on the window.
	SelectSince(ctx context.Context, since time.Time) ([]*models.Event, error)
}
