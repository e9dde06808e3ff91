package repositories

import (
	"context"
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	// FindNotificationByID retrieves a notification, apperrors.ErrNotFound when absent.
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// FindNotificationsByRecipient retrieves all notifications for a recipient, newest first.
	FindNotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)

	// FindUnreadNotificationsByRecipient retrieves unread notifications for a recipient, newest first.
	FindUnreadNotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead flags a notification as read, apperrors.ErrNotFound when absent.
	MarkNotificationRead(ctx context.Context, notificationID string, readAt time.Time) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
