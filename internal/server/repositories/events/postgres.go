package events

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"babytracker/internal/common"
	"babytracker/internal/dbx"
	"babytracker/internal/server/models"
)

// PostgresRepository implements event storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (id, type, timestamp, notes, duration, during_feeding, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		event.ID, event.Type, event.Timestamp, event.Notes, event.Duration, event.DuringFeeding, event.UserID).
		Scan(&event.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Event, error) {
	query := `
		SELECT id, type, timestamp, notes, duration, during_feeding, user_id, created_at
		FROM events
		WHERE id = $1
	`
	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.Type, &event.Timestamp, &event.Notes,
		&event.Duration, &event.DuringFeeding, &event.UserID, &event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return event, nil
}

func (r *PostgresRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET type = $2, timestamp = $3, notes = $4, duration = $5, during_feeding = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		event.ID, event.Type, event.Timestamp, event.Notes, event.Duration, event.DuringFeeding)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) SelectRecent(ctx context.Context, limit int) ([]*models.Event, error) {
	query := `
		SELECT id, type, timestamp, notes, duration, during_feeding, user_id, created_at
		FROM events
		ORDER BY timestamp DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func (r *PostgresRepository) SelectSince(ctx context.Context, since time.Time) ([]*models.Event, error) {
	query := `
		SELECT id, type, timestamp, notes, duration, during_feeding, user_id, created_at
		FROM events
		WHERE timestamp >= $1
		ORDER BY timestamp ASC
	`
	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("failed to select events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]*models.Event, error) {
	// Non-nil even when empty, so the API serializes [] rather than null.
	result := []*models.Event{}
	for rows.Next() {
		var item models.Event
		if err := rows.Scan(
			&item.ID, &item.Type, &item.Timestamp, &item.Notes,
			&item.Duration, &item.DuringFeeding, &item.UserID, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
