package tui

import (
	"context"
	"time"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

// Store defines the persistence methods the TUI requires.
//
//go:generate mockgen -source=database.go -destination=mock_store_test.go -package=tui
type Store interface {
	LoadTimerConfig(ctx context.Context) models.TimerConfig
	SaveTimerConfig(ctx context.Context, cfg models.TimerConfig) error

	RecordSet(ctx context.Context, stats models.SessionStats, finishedAt time.Time) (models.SetRecord, error)
	CompletedSetCount(ctx context.Context) (int, error)
	RecentSets(ctx context.Context, limit int) ([]models.SetRecord, error)
}
