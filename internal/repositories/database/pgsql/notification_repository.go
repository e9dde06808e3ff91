package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	"github.com/staffbridge/workforce_backend/internal/models"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		SenderID:       m.SenderID,
		RecipientID:    m.RecipientID,
		Title:          m.Title,
		Message:        m.Message,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

const notificationColumns = `notification_id, sender_id, recipient_id, title, message, read, created_at`

func scanNotification(row pgx.Row) (*models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.SenderID,
		&m.RecipientID,
		&m.Title,
		&m.Message,
		&m.Read,
		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectNotifications(rows pgx.Rows) ([]domain.Notification, error) {
	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating notification rows: %w", err)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE notification_id = $1;
	`
	m, err := scanNotification(r.db.QueryRow(ctx, query, notificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification %s: %w", notificationID, err)
	}
	notification := toDomainNotification(*m)
	return &notification, nil
}

func (r *PgxNotificationRepository) FindNotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for recipient %s: %w", recipientID, err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *PgxNotificationRepository) FindUnreadNotificationsByRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1 AND read = FALSE
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, recipientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query unread notifications for recipient %s: %w", recipientID, err)
	}
	defer rows.Close()
	return collectNotifications(rows)
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (notification_id, sender_id, recipient_id, title, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.db.Exec(ctx, query,
		notification.NotificationID,
		notification.SenderID,
		notification.RecipientID,
		notification.Title,
		notification.Message,
		notification.Read,
		notification.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification %s: %w", notification.NotificationID, err)
	}
	return nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, readAt time.Time) error {
	query := `
		UPDATE notifications
		SET read = TRUE, read_at = $2
		WHERE notification_id = $1;
	`
	tag, err := r.db.Exec(ctx, query, notificationID, readAt)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("notification " + notificationID + " not found")
	}
	return nil
}
