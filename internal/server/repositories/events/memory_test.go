package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"babytracker/internal/common"
	"babytracker/internal/server/models"
)

func TestMemoryRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	event := &models.Event{ID: "e-1", Type: models.EventTypePee, Timestamp: time.Now()}
	require.NoError(t, repo.Create(ctx, event))
	assert.False(t, event.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, models.EventTypePee, got.Type)

	got.Type = models.EventTypePoop
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByID(ctx, "e-1")
	require.NoError(t, err)
	assert.Equal(t, models.EventTypePoop, got.Type)

	require.NoError(t, repo.Delete(ctx, "e-1"))
	err = repo.Delete(ctx, "e-1")
	assert.True(t, errors.Is(err, common.ErrorNotFound))

	_, err = repo.GetByID(ctx, "e-1")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestMemoryRepository_Select(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	now := time.Now()
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(ctx, &models.Event{
			ID:        id,
			Type:      models.EventTypeFeed,
			Timestamp: now.Add(-time.Duration(i) * time.Hour),
		}))
	}

	recent, err := repo.SelectRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "a", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)

	since, err := repo.SelectSince(ctx, now.Add(-90*time.Minute))
	require.NoError(t, err)
	require.Len(t, since, 2)
	assert.Equal(t, "b", since[0].ID)
	assert.Equal(t, "a", since[1].ID)
}
