package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

func (r *cartRepository) GetOrCreate(ctx context.Context, userID int64) (*model.Cart, error) {
	const query = `INSERT INTO carts (user_id) VALUES ($1)
                   ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
                   RETURNING id`
	cart := model.Cart{UserID: userID}
	if err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&cart.ID); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) Entries(ctx context.Context, cartID int64) ([]model.CartEntry, error) {
	const query = `SELECT ci.id, ci.cart_id, ci.product_id, ci.quantity, ci.selected,
                          p.id, p.name, p.description, p.price, p.stock, p.category, p.created_at
                   FROM cart_items ci
                   JOIN products p ON p.id = ci.product_id
                   WHERE ci.cart_id=$1
                   ORDER BY ci.id`
	rows, err := r.storage.pool.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartEntry
	for rows.Next() {
		var e model.CartEntry
		l, p := &e.Line, &e.Product
		if err := rows.Scan(&l.ID, &l.CartID, &l.ProductID, &l.Quantity, &l.Selected,
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.Category, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cartRepository) GetLine(ctx context.Context, cartID, productID int64) (*model.CartLine, error) {
	const query = `SELECT id, cart_id, product_id, quantity, selected
                   FROM cart_items WHERE cart_id=$1 AND product_id=$2`
	var l model.CartLine
	err := r.storage.pool.QueryRow(ctx, query, cartID, productID).Scan(&l.ID, &l.CartID, &l.ProductID, &l.Quantity, &l.Selected)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *cartRepository) InsertLine(ctx context.Context, line *model.CartLine) (*model.CartLine, error) {
	const query = `INSERT INTO cart_items (cart_id, product_id, quantity, selected)
                   VALUES ($1, $2, $3, $4)
                   RETURNING id`
	l := *line
	err := r.storage.pool.QueryRow(ctx, query, l.CartID, l.ProductID, l.Quantity, l.Selected).Scan(&l.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &l, nil
}

func (r *cartRepository) UpdateLineQuantity(ctx context.Context, lineID int64, quantity int) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE cart_items SET quantity=$1 WHERE id=$2`, quantity, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) SetLineSelected(ctx context.Context, lineID int64, selected bool) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE cart_items SET selected=$1 WHERE id=$2`, selected, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) DeleteLine(ctx context.Context, lineID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, lineID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, cartID int64) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM cart_items WHERE cart_id=$1`, cartID)
	return err
}
