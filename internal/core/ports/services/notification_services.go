package services

import (
	"context"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

// Notifier is the narrow dispatch port core services use for best-effort
// notifications. Implementations must not block the caller's primary write;
// callers log and swallow any returned error.
type Notifier interface {
	// SystemNotify persists a system-originated notification without applying
	// the role message-flow policy.
	SystemNotify(ctx context.Context, senderID, recipientID, title, message string) error
}

// NotificationSvcFacade exposes the notification operations, including the
// role-gated user-to-user send path.
type NotificationSvcFacade interface {
	Notifier

	// Send delivers a user-initiated notification, enforcing the directed
	// role allow-table; a disallowed sender/recipient pair fails with a
	// forbidden error.
	Send(ctx context.Context, senderID string, req dto.SendNotificationRequest) (*domain.Notification, error)

	// AllowedRecipients lists the active users the sender may message under
	// the allow-table.
	AllowedRecipients(ctx context.Context, senderID string) ([]domain.User, error)

	ListForRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)
	ListUnreadForRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error)

	// MarkRead acknowledges a notification on behalf of its recipient; a
	// caller who is not the recipient fails with a forbidden error before
	// anything is written.
	MarkRead(ctx context.Context, notificationID, recipientID string) (*domain.Notification, error)
}
