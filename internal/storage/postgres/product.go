package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

// sortColumns whitelists identifiers the catalog filter may sort by.
var sortColumns = map[string]string{
	model.SortByPrice:  "price",
	model.SortByStock:  "stock",
	model.SortByNewest: "created_at",
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (name, description, price, stock, category)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	p := *product
	err := r.storage.pool.QueryRow(ctx, query, p.Name, p.Description, p.Price, p.Stock, p.Category).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	const query = `SELECT id, name, description, price, stock, category, created_at FROM products WHERE id=$1`
	var p model.Product
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, description, price, stock, category, created_at FROM products`)

	var conditions []string
	var args []any
	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price>=$%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price<=$%d", len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if filter.SortDesc {
		direction = "DESC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s, id", column, direction)

	args = append(args, filter.Limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	rows, err := r.storage.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) SearchWithRating(ctx context.Context, query string, limit, offset int) ([]model.RatedProduct, error) {
	const searchQuery = `SELECT p.id, p.name, p.description, p.price, p.stock, p.category, p.created_at,
                                COALESCE(AVG(r.rating), 0) AS avg_rating
                         FROM products p
                         LEFT JOIN reviews r ON r.product_id = p.id
                         WHERE p.name ILIKE '%' || $1 || '%'
                         GROUP BY p.id
                         ORDER BY avg_rating DESC, p.id
                         LIMIT $2 OFFSET $3`
	rows, err := r.storage.pool.Query(ctx, searchQuery, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.RatedProduct
	for rows.Next() {
		var rp model.RatedProduct
		p := &rp.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt, &rp.AvgRating); err != nil {
			return nil, err
		}
		result = append(result, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Suggestions(ctx context.Context, prefix string, limit int) ([]string, error) {
	const query = `SELECT DISTINCT name FROM products WHERE name ILIKE $1 || '%' ORDER BY name LIMIT $2`
	rows, err := r.storage.pool.Query(ctx, query, prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		result = append(result, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
