package usecase

import (
	"context"

	"github.com/starbuy/shop/internal/domain/model"
	"github.com/starbuy/shop/internal/domain/repository"
)

// CatalogUseCase exposes the storefront package listing.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List returns packages available for purchase.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Package, error) {
	return u.catalog.ListActive(ctx)
}
