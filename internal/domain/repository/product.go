package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// ProductRepository describes persistence operations for the catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	SearchWithRating(ctx context.Context, query string, limit, offset int) ([]model.RatedProduct, error)
	Suggestions(ctx context.Context, prefix string, limit int) ([]string, error)
	Count(ctx context.Context) (int, error)
}
