package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

// RecordSet appends one finished set to history and returns the stored
// record.
func (s *Store) RecordSet(ctx context.Context, stats models.SessionStats, finishedAt time.Time) (models.SetRecord, error) {
	rec := models.SetRecord{
		ID:               uuid.NewString(),
		FinishedAt:       finishedAt.UTC(),
		Completed:        stats.CompletedWorkPhases,
		SkippedUnstarted: stats.SkippedUnstartedWorkPhases,
		SkippedPartial:   stats.SkippedPartialWorkPhases,
		FocusedSeconds:   stats.TotalFocusedSeconds,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sets (id, finished_at, completed, skipped_unstarted, skipped_partial, focused_seconds)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.FinishedAt, rec.Completed, rec.SkippedUnstarted, rec.SkippedPartial, rec.FocusedSeconds)
	if err != nil {
		return models.SetRecord{}, wrapSetErr("record", err)
	}
	return rec, nil
}

// CompletedSetCount returns the lifetime number of finished sets.
func (s *Store) CompletedSetCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM sets").Scan(&count)
	if err != nil {
		return 0, wrapSetErr("count", err)
	}
	return count, nil
}

// RecentSets returns the most recently finished sets, newest first.
func (s *Store) RecentSets(ctx context.Context, limit int) ([]models.SetRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, finished_at, completed, skipped_unstarted, skipped_partial, focused_seconds
		FROM sets
		ORDER BY finished_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapSetErr("list", err)
	}
	defer rows.Close()

	var sets []models.SetRecord
	for rows.Next() {
		var rec models.SetRecord
		if err := rows.Scan(&rec.ID, &rec.FinishedAt, &rec.Completed, &rec.SkippedUnstarted, &rec.SkippedPartial, &rec.FocusedSeconds); err != nil {
			return nil, wrapSetErr("list", err)
		}
		sets = append(sets, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSetErr("list", err)
	}
	return sets, nil
}
