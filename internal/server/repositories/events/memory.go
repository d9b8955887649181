package events

import (
	"context"
	"sort"
	"sync"
	"time"

	"babytracker/internal/common"
	"babytracker/internal/server/models"
)

// MemoryRepository is a map-backed Repository used in tests and local
// experiments. It applies the same ordering rules as the Postgres
// implementation.
type MemoryRepository struct {
	mu     sync.RWMutex
	events map[string]models.Event
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{events: make(map[string]models.Event)}
}

func (r *MemoryRepository) Create(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	event, ok := r.events[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &event, nil
}

func (r *MemoryRepository) Update(ctx context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.events[event.ID]
	if !ok {
		return common.ErrorNotFound
	}
	event.CreatedAt = stored.CreatedAt
	r.events[event.ID] = *event
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *MemoryRepository) SelectRecent(ctx context.Context, limit int) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.snapshot()
	sort.Slice(all, func(i, j int) bool { return all[i].Timestamp.After(all[j].Timestamp) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepository) SelectSince(ctx context.Context, since time.Time) ([]*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []*models.Event{}
	for _, event := range r.snapshot() {
		if !event.Timestamp.Before(since) {
			result = append(result, event)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Timestamp.Before(result[j].Timestamp) })
	return result, nil
}

func (r *MemoryRepository) snapshot() []*models.Event {
	all := make([]*models.Event, 0, len(r.events))
	for _, event := range r.events {
		e := event
		all = append(all, &e)
	}
	return all
}
