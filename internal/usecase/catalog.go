package usecase

import (
	"context"
	"strings"

	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

const maxPageSize = 100

// CatalogUseCase serves product browsing, search and admin inserts.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns a catalog page. Unknown sort keys fall back to newest-first
// so the filter can never inject SQL identifiers.
func (u *CatalogUseCase) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	switch filter.SortBy {
	case model.SortByPrice, model.SortByStock, model.SortByNewest:
	default:
		filter.SortBy = model.SortByNewest
		filter.SortDesc = true
	}

	if filter.Limit <= 0 {
		filter.Limit = model.DefaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return u.products.List(ctx, filter)
}

// Get fetches a single product.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// Search finds products by name, each paired with its average rating.
func (u *CatalogUseCase) Search(ctx context.Context, query string, limit, offset int) ([]model.RatedProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = model.DefaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return u.products.SearchWithRating(ctx, query, limit, offset)
}

// Suggestions returns product-name completions for a prefix.
func (u *CatalogUseCase) Suggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, nil
	}
	if limit <= 0 || limit > maxPageSize {
		limit = 10
	}
	return u.products.Suggestions(ctx, prefix, limit)
}

// Create inserts a new catalog product.
func (u *CatalogUseCase) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return u.products.Create(ctx, product)
}

// Count returns the catalog size.
func (u *CatalogUseCase) Count(ctx context.Context) (int, error) {
	return u.products.Count(ctx)
}
