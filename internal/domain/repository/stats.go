package repository

import (
	"context"

	"github.com/starbuy/shop/internal/domain/model"
)

// StatsRepository aggregates counts for the operator dashboard.
type StatsRepository interface {
	AdminStats(ctx context.Context) (*model.AdminStats, error)
}
