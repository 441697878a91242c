package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

func (r *voucherRepository) Create(ctx context.Context, voucher *model.Voucher) (*model.Voucher, error) {
	const query = `INSERT INTO vouchers (user_id, code, title, description, discount_type, target, discount_value, usage_count, max_usage, expires_at)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
                   RETURNING id`
	v := *voucher
	var expires any
	if !v.ExpiresAt.IsZero() {
		expires = v.ExpiresAt
	}
	err := r.storage.pool.QueryRow(ctx, query,
		v.UserID, v.Code, v.Title, v.Description, v.DiscountType, v.Target, v.DiscountValue, v.UsageCount, v.MaxUsage, expires,
	).Scan(&v.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &v, nil
}

func (r *voucherRepository) GetByCode(ctx context.Context, userID int64, code string) (*model.Voucher, error) {
	const query = `SELECT id, user_id, code, title, description, discount_type, target, discount_value, usage_count, max_usage, expires_at
                   FROM vouchers WHERE user_id=$1 AND code=$2`
	v, err := scanVoucher(r.storage.pool.QueryRow(ctx, query, userID, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *voucherRepository) ListByUser(ctx context.Context, userID int64) ([]model.Voucher, error) {
	const query = `SELECT id, user_id, code, title, description, discount_type, target, discount_value, usage_count, max_usage, expires_at
                   FROM vouchers WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Voucher
	for rows.Next() {
		v, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanVoucher(row pgx.Row) (*model.Voucher, error) {
	var v model.Voucher
	var expires sql.NullTime
	err := row.Scan(&v.ID, &v.UserID, &v.Code, &v.Title, &v.Description, &v.DiscountType, &v.Target, &v.DiscountValue, &v.UsageCount, &v.MaxUsage, &expires)
	if err != nil {
		return nil, err
	}
	if expires.Valid {
		v.ExpiresAt = expires.Time
	} else {
		v.ExpiresAt = time.Time{}
	}
	return &v, nil
}
