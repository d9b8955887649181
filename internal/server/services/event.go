package services

import (
	"context"
	"database/sql"
	"math"
	"time"

	"github.com/google/uuid"

	"babytracker/internal/common"
	"babytracker/internal/server/models"
	"babytracker/internal/server/repositories/repomanager"
)

// DefaultListLimit is the number of events returned when the caller does not
// specify one.
const DefaultListLimit = 50

// CreateEventParams carries the caller-supplied fields of a new event.
type CreateEventParams struct {
	Type          models.EventType
	Timestamp     time.Time
	Notes         *string
	Duration      *int
	DuringFeeding *bool
}

// UpdateEventParams carries a partial update. Nil fields are left unchanged.
//
// When both StartTime and Timestamp are present the event's duration is
// recomputed as max(1, round(end−start in minutes)) and its timestamp is set
// to the end instant; a direct Duration is honored only without StartTime.
type UpdateEventParams struct {
	Type      *models.EventType
	Timestamp *time.Time
	StartTime *time.Time
	Notes     *string
	Duration  *int
}

// EventService implements the event CRUD semantics over the event store.
type EventService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewEventService constructs an EventService using the repository manager.
func NewEventService(db *sql.DB, m repomanager.RepositoryManager) *EventService {
	return &EventService{db: db, repomanager: m}
}

// Create validates and persists a new event, attributed to userID when the
// caller is authenticated. Missing type or timestamp, an unknown tag, or a
// non-positive duration yield common.ErrorValidation.
func (s *EventService) Create(ctx context.Context, userID string, params CreateEventParams) (*models.Event, error) {
	if params.Type == "" || params.Timestamp.IsZero() {
		return nil, common.ErrorValidation
	}
	if !params.Type.Valid() {
		return nil, common.ErrorValidation
	}
	if params.Duration != nil && *params.Duration < 1 {
		return nil, common.ErrorValidation
	}

	event := &models.Event{
		ID:            uuid.NewString(),
		Type:          params.Type,
		Timestamp:     params.Timestamp,
		Notes:         normalizeNotes(params.Notes),
		Duration:      params.Duration,
		DuringFeeding: params.DuringFeeding,
	}
	if userID != "" {
		event.UserID = &userID
	}

	repo := s.repomanager.Events(s.db)
	if err := repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns the limit most recent events, newest first.
func (s *EventService) List(ctx context.Context, limit int) ([]*models.Event, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	repo := s.repomanager.Events(s.db)
	return repo.SelectRecent(ctx, limit)
}

// Update applies a partial update to the event with the given identifier.
// Returns common.ErrorNotFound when no such event exists. Concurrent updates
// are last-write-wins.
func (s *EventService) Update(ctx context.Context, id string, params UpdateEventParams) (*models.Event, error) {
	repo := s.repomanager.Events(s.db)

	event, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Type != nil {
		if !params.Type.Valid() {
			return nil, common.ErrorValidation
		}
		event.Type = *params.Type
	}
	if params.Notes != nil {
		event.Notes = normalizeNotes(params.Notes)
	}

	if params.StartTime != nil && params.Timestamp != nil {
		end := *params.Timestamp
		minutes := int(math.Round(end.Sub(*params.StartTime).Minutes()))
		if minutes < 1 {
			minutes = 1
		}
		event.Duration = &minutes
		event.Timestamp = end
	} else {
		if params.Timestamp != nil {
			event.Timestamp = *params.Timestamp
		}
		if params.Duration != nil {
			if *params.Duration < 1 {
				return nil, common.ErrorValidation
			}
			event.Duration = params.Duration
		}
	}

	if err := repo.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// Delete removes the event. Returns common.ErrorNotFound when the identifier
// matches nothing, including a repeated delete.
func (s *EventService) Delete(ctx context.Context, id string) error {
	repo := s.repomanager.Events(s.db)
	return repo.Delete(ctx, id)
}

// normalizeNotes maps empty notes to nil so they store as NULL.
func normalizeNotes(notes *string) *string {
	if notes == nil || *notes == "" {
		return nil
	}
	n := *notes
	return &n
}
