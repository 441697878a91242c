package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

const orderColumns = `id, user_id, number, status, total_price, address, phone_number, shipping_method, shipping_fee, discount_amount, created_at`

type placedLine struct {
	lineID    int64
	productID int64
	quantity  int
	stock     int
	price     float64
}

// Place turns the draft's selected cart lines into an order. Everything runs
// in one transaction: stock is checked under row locks, order lines snapshot
// the current product price, consumed cart lines are deleted and voucher
// usage is incremented. Any precondition failure rolls the whole thing back.
func (r *orderRepository) Place(ctx context.Context, draft model.OrderDraft) (*model.Order, error) {
	order := model.Order{
		UserID:         draft.UserID,
		Number:         draft.Number,
		Status:         model.OrderStatusPending,
		TotalPrice:     draft.TotalPrice,
		Address:        draft.Address,
		PhoneNumber:    draft.PhoneNumber,
		ShippingMethod: draft.ShippingMethod,
		ShippingFee:    draft.ShippingFee,
		DiscountAmount: draft.DiscountAmount,
	}

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectLines = `SELECT ci.id, ci.product_id, ci.quantity, p.stock, p.price
                             FROM cart_items ci
                             JOIN products p ON p.id = ci.product_id
                             WHERE ci.cart_id=$1 AND ci.selected
                             ORDER BY ci.id
                             FOR UPDATE OF p`
		rows, err := tx.Query(ctx, selectLines, draft.CartID)
		if err != nil {
			return err
		}

		var lines []placedLine
		for rows.Next() {
			var l placedLine
			if err := rows.Scan(&l.lineID, &l.productID, &l.quantity, &l.stock, &l.price); err != nil {
				rows.Close()
				return err
			}
			lines = append(lines, l)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		if len(lines) == 0 {
			return domainErrors.ErrEmptyCart
		}
		for _, l := range lines {
			if l.stock < l.quantity {
				return domainErrors.ErrInsufficientStock
			}
		}

		if draft.VoucherID != 0 {
			const burnVoucher = `UPDATE vouchers SET usage_count = usage_count + 1
                                 WHERE id=$1 AND usage_count < max_usage`
			tag, err := tx.Exec(ctx, burnVoucher, draft.VoucherID)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return domainErrors.ErrVoucherLimitReached
			}
		}

		const insertOrder = `INSERT INTO orders (user_id, number, status, total_price, address, phone_number, shipping_method, shipping_fee, discount_amount, voucher_id)
                             VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, 0))
                             RETURNING id, created_at`
		err = tx.QueryRow(ctx, insertOrder,
			order.UserID, order.Number, order.Status, order.TotalPrice, order.Address,
			order.PhoneNumber, order.ShippingMethod, order.ShippingFee, order.DiscountAmount, draft.VoucherID,
		).Scan(&order.ID, &order.CreatedAt)
		if err != nil {
			return err
		}

		for _, l := range lines {
			const insertLine = `INSERT INTO order_items (order_id, product_id, quantity, unit_price) VALUES ($1, $2, $3, $4)`
			if _, err := tx.Exec(ctx, insertLine, order.ID, l.productID, l.quantity, l.price); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `UPDATE products SET stock = stock - $1 WHERE id=$2`, l.quantity, l.productID); err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE id=$1`, l.lineID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.UserID, &o.Number, &o.Status, &o.TotalPrice, &o.Address,
		&o.PhoneNumber, &o.ShippingMethod, &o.ShippingFee, &o.DiscountAmount, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Number, &o.Status, &o.TotalPrice, &o.Address,
			&o.PhoneNumber, &o.ShippingMethod, &o.ShippingFee, &o.DiscountAmount, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *orderRepository) Entries(ctx context.Context, orderID int64) ([]model.OrderEntry, error) {
	const query = `SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price,
                          p.id, p.name, p.description, p.price, p.stock, p.category, p.created_at
                   FROM order_items oi
                   JOIN products p ON p.id = oi.product_id
                   WHERE oi.order_id=$1
                   ORDER BY oi.id`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.OrderEntry
	for rows.Next() {
		var e model.OrderEntry
		l, p := &e.Line, &e.Product
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ProductID, &l.Quantity, &l.UnitPrice,
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

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, status, orderID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// Cancel aborts a pending order, restoring the stock of every line.
func (r *orderRepository) Cancel(ctx context.Context, orderID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectStatus = `SELECT status FROM orders WHERE id=$1 FOR UPDATE`
		var status model.OrderStatus
		if err := tx.QueryRow(ctx, selectStatus, orderID).Scan(&status); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainErrors.ErrNotFound
			}
			return err
		}
		if status != model.OrderStatusPending {
			return domainErrors.ErrOrderNotCancellable
		}

		const restoreStock = `UPDATE products p SET stock = p.stock + oi.quantity
                              FROM order_items oi
                              WHERE oi.order_id=$1 AND p.id = oi.product_id`
		if _, err := tx.Exec(ctx, restoreStock, orderID); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `UPDATE orders SET status=$1 WHERE id=$2`, model.OrderStatusCancelled, orderID)
		return err
	})
}
