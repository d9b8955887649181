package services

import (
	"context"
	"database/sql"
	"math"
	"time"

	"babytracker/internal/server/models"
	"babytracker/internal/server/repositories/repomanager"
)

// DefaultStatsWindowDays is the stats window used when the caller does not
// specify one.
const DefaultStatsWindowDays = 7

// dayLabelFormat produces the calendar-day labels used as byDay keys, in the
// server's local time zone.
const dayLabelFormat = "1/2/2006"

// StatsService derives aggregate statistics from a time-windowed slice of
// the event store. It never mutates events.
type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewStatsService constructs a StatsService using the repository manager.
func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m}
}

// ComputeStats aggregates every event with timestamp >= now−windowDays.
// The window has no upper bound, so future-dated entries count as well.
//
// ByType reports all known tags, zero when absent. AveragePerDay is
// total/distinct-day-count rounded to one decimal, 0 for an empty window.
// MostCommonHour is the local hour with the highest count, the smallest hour
// winning ties, 0 when no events exist.
func (s *StatsService) ComputeStats(ctx context.Context, windowDays int) (*models.Stats, error) {
	if windowDays <= 0 {
		windowDays = DefaultStatsWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	repo := s.repomanager.Events(s.db)
	events, err := repo.SelectSince(ctx, since)
	if err != nil {
		return nil, err
	}

	stats := &models.Stats{
		ByType: make(map[models.EventType]int, len(models.AllEventTypes())),
		ByDay:  make(map[string]int),
	}
	for _, t := range models.AllEventTypes() {
		stats.ByType[t] = 0
	}

	var hourCounts [24]int
	for _, event := range events {
		local := event.Timestamp.Local()

		stats.Total++
		stats.ByType[event.Type]++
		stats.ByDay[local.Format(dayLabelFormat)]++
		hourCounts[local.Hour()]++
	}

	if days := len(stats.ByDay); days > 0 {
		stats.AveragePerDay = math.Round(float64(stats.Total)/float64(days)*10) / 10
	}

	best := 0
	for hour := 1; hour < 24; hour++ {
		if hourCounts[hour] > hourCounts[best] {
			best = hour
		}
	}
	stats.MostCommonHour = best

	return stats, nil
}
