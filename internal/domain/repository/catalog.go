package repository

import (
	"context"

	"github.com/starbuy/shop/internal/domain/model"
)

// CatalogRepository is the read-only catalog collaborator.
type CatalogRepository interface {
	ListActive(ctx context.Context) ([]model.Package, error)
	GetByID(ctx context.Context, id int64) (*model.Package, error)
}
