package usecase

import (
	"context"

	"github.com/trangvu/shopmart/internal/domain/model"
	"github.com/trangvu/shopmart/internal/domain/repository"
)

// NotificationUseCase serves the user-facing notification feed and feeds the
// outbox dispatcher.
type NotificationUseCase struct {
	notifications repository.NotificationRepository
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(notifications repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

// ListByUser returns the user's notifications, newest first.
func (u *NotificationUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}

// UnreadCount returns the number of unread notifications.
func (u *NotificationUseCase) UnreadCount(ctx context.Context, userID int64) (int, error) {
	return u.notifications.UnreadCount(ctx, userID)
}

// MarkRead marks one of the user's notifications as read. Notifications
// belonging to another user are reported as not found.
func (u *NotificationUseCase) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return u.notifications.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead marks every notification of the user as read.
func (u *NotificationUseCase) MarkAllRead(ctx context.Context, userID int64) error {
	return u.notifications.MarkAllRead(ctx, userID)
}

// SelectBatchForPublishing leases unpublished notifications for the event
// dispatcher.
func (u *NotificationUseCase) SelectBatchForPublishing(ctx context.Context, limit int) ([]model.Notification, error) {
	return u.notifications.SelectBatchForPublishing(ctx, limit)
}

// MarkPublished confirms a leased notification was delivered to the sink.
func (u *NotificationUseCase) MarkPublished(ctx context.Context, notificationID int64) error {
	return u.notifications.MarkPublished(ctx, notificationID)
}
