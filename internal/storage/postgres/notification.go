package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/trangvu/shopmart/internal/domain/errors"
	"github.com/trangvu/shopmart/internal/domain/model"
)

func (r *notificationRepository) Insert(ctx context.Context, notification *model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (user_id, title, message, type, reference_id)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, created_at`
	n := *notification
	err := r.storage.pool.QueryRow(ctx, query, n.UserID, n.Title, n.Message, n.Type, n.ReferenceID).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	const query = `SELECT id, user_id, title, message, type, reference_id, read, published, created_at
                   FROM notifications WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.ReferenceID, &n.Read, &n.Published, &n.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *notificationRepository) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id=$1 AND NOT read`, userID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, userID, notificationID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE notifications SET read=TRUE WHERE id=$1 AND user_id=$2`, notificationID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	_, err := r.storage.pool.Exec(ctx, `UPDATE notifications SET read=TRUE WHERE user_id=$1 AND NOT read`, userID)
	return err
}

// SelectBatchForPublishing leases up to limit unpublished notifications for
// the dispatcher. Rows are locked with SKIP LOCKED and stamped claimed_at in
// the same transaction, so concurrent dispatchers never claim the same row.
// The published flag is only set by MarkPublished after a successful publish;
// rows whose lease ran out are offered again.
func (r *notificationRepository) SelectBatchForPublishing(ctx context.Context, limit int) ([]model.Notification, error) {
	var batch []model.Notification

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const query = `SELECT id, user_id, title, message, type, reference_id, read, published, created_at
                       FROM notifications
                       WHERE NOT published
                         AND (claimed_at IS NULL OR claimed_at < NOW() - INTERVAL '1 minute')
                       ORDER BY id
                       LIMIT $1
                       FOR UPDATE SKIP LOCKED`
		rows, err := tx.Query(ctx, query, limit)
		if err != nil {
			return err
		}
		for rows.Next() {
			var n model.Notification
			if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.ReferenceID, &n.Read, &n.Published, &n.CreatedAt); err != nil {
				rows.Close()
				return err
			}
			batch = append(batch, n)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range batch {
			if _, err := tx.Exec(ctx, `UPDATE notifications SET claimed_at=NOW() WHERE id=$1`, batch[i].ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return batch, nil
}

func (r *notificationRepository) MarkPublished(ctx context.Context, notificationID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE notifications SET published=TRUE WHERE id=$1`, notificationID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
