package repository

import (
	"context"

	"github.com/starbuy/shop/internal/domain/model"
)

// SettingsRepository is the read-only configuration collaborator.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Snapshot(ctx context.Context) (model.Settings, error)
}
