package store

import (
	"context"
	"time"

	"github.com/letsDanceDB/pomodoro-timer/internal/models"
)

// ConfigRepository defines configuration persistence.
type ConfigRepository interface {
	LoadTimerConfig(ctx context.Context) models.TimerConfig
	SaveTimerConfig(ctx context.Context, cfg models.TimerConfig) error
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// HistoryRepository defines completed-set history persistence.
type HistoryRepository interface {
	RecordSet(ctx context.Context, stats models.SessionStats, finishedAt time.Time) (models.SetRecord, error)
	CompletedSetCount(ctx context.Context) (int, error)
	RecentSets(ctx context.Context, limit int) ([]models.SetRecord, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mock_repository_test.go -package=store
type Repository interface {
	ConfigRepository
	HistoryRepository
}

var _ Repository = (*Store)(nil)
