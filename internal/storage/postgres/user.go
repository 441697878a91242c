package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

// uniqueViolation is the PostgreSQL error code for unique constraint breaks.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, email, fullName, passwordHash string) (*model.User, error) {
	const query = `INSERT INTO users (email, full_name, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email, fullName, passwordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	u.Email = email
	u.FullName = fullName
	u.PasswordHash = passwordHash
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	const query = `SELECT id, email, full_name, password_hash, created_at FROM users WHERE email=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, email).Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT id, email, full_name, password_hash, created_at FROM users WHERE id=$1`
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// --- AddressRepository implementation ---

func (r *addressRepository) Create(ctx context.Context, address *model.Address) (*model.Address, error) {
	const query = `INSERT INTO addresses (user_id, recipient, line, district, city, phone_number, type, is_default)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, created_at`
	a := *address
	err := r.storage.pool.QueryRow(ctx, query,
		a.UserID, a.Recipient, a.Line, a.District, a.City, a.PhoneNumber, a.Type, a.IsDefault,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int64) ([]model.Address, error) {
	const query = `SELECT id, user_id, recipient, line, district, city, phone_number, type, is_default, created_at
                   FROM addresses WHERE user_id=$1 ORDER BY is_default DESC, id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Address
	for rows.Next() {
		var a model.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Recipient, &a.Line, &a.District, &a.City, &a.PhoneNumber, &a.Type, &a.IsDefault, &a.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *addressRepository) GetByID(ctx context.Context, id int64) (*model.Address, error) {
	const query = `SELECT id, user_id, recipient, line, district, city, phone_number, type, is_default, created_at
                   FROM addresses WHERE id=$1`
	var a model.Address
	err := r.storage.pool.QueryRow(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Recipient, &a.Line, &a.District, &a.City, &a.PhoneNumber, &a.Type, &a.IsDefault, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressRepository) SetDefault(ctx context.Context, userID, addressID int64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE addresses SET is_default=FALSE WHERE user_id=$1`, userID); err != nil {
			return err
		}
		tag, err := tx.Exec(ctx, `UPDATE addresses SET is_default=TRUE WHERE id=$1 AND user_id=$2`, addressID, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM addresses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- CardRepository implementation ---

func (r *cardRepository) Create(ctx context.Context, card *model.PaymentCard) (*model.PaymentCard, error) {
	const query = `INSERT INTO payment_cards (user_id, holder, last_four, exp_month, exp_year)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	c := *card
	err := r.storage.pool.QueryRow(ctx, query, c.UserID, c.Holder, c.LastFour, c.ExpMonth, c.ExpYear).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cardRepository) ListByUser(ctx context.Context, userID int64) ([]model.PaymentCard, error) {
	const query = `SELECT id, user_id, holder, last_four, exp_month, exp_year, created_at
                   FROM payment_cards WHERE user_id=$1 ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.PaymentCard
	for rows.Next() {
		var c model.PaymentCard
		if err := rows.Scan(&c.ID, &c.UserID, &c.Holder, &c.LastFour, &c.ExpMonth, &c.ExpYear, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *cardRepository) Delete(ctx context.Context, userID, cardID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM payment_cards WHERE id=$1 AND user_id=$2`, cardID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
