package postgres

import (
	"context"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	const query = `INSERT INTO reviews (user_id, product_id, order_id, rating, comment)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	rv := *review
	err := r.storage.pool.QueryRow(ctx, query, rv.UserID, rv.ProductID, rv.OrderID, rv.Rating, rv.Comment).Scan(&rv.ID, &rv.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &rv, nil
}

func (r *reviewRepository) ListByProduct(ctx context.Context, productID int64) ([]model.Review, error) {
	const query = `SELECT id, user_id, product_id, order_id, rating, comment, created_at
                   FROM reviews WHERE product_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.UserID, &rv.ProductID, &rv.OrderID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *wishlistRepository) Add(ctx context.Context, userID, productID int64) error {
	const query = `INSERT INTO wishlist (user_id, product_id) VALUES ($1, $2)`
	if _, err := r.storage.pool.Exec(ctx, query, userID, productID); err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, productID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM wishlist WHERE user_id=$1 AND product_id=$2`, userID, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID int64) ([]model.Product, error) {
	const query = `SELECT p.id, p.name, p.description, p.price, p.stock, p.category, p.created_at
                   FROM wishlist w
                   JOIN products p ON p.id = w.product_id
                   WHERE w.user_id=$1
                   ORDER BY w.created_at DESC, p.id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
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
