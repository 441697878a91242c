package repository

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
)

// NotificationRepository describes persistence for user notifications and
// the outbox consumed by the event dispatcher.
type NotificationRepository interface {
	Insert(ctx context.Context, notification *model.Notification) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID int64) (int, error)
	MarkRead(ctx context.Context, userID, notificationID int64) error
	MarkAllRead(ctx context.Context, userID int64) error
	SelectBatchForPublishing(ctx context.Context, limit int) ([]model.Notification, error)
	MarkPublished(ctx context.Context, notificationID int64) error
}
