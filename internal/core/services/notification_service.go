package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/staffbridge/workforce_backend/internal/apperrors"
	"github.com/staffbridge/workforce_backend/internal/core/domain"
	portsrepo "github.com/staffbridge/workforce_backend/internal/core/ports/repositories"
	portssvc "github.com/staffbridge/workforce_backend/internal/core/ports/services"
	"github.com/staffbridge/workforce_backend/internal/dto"
)

// notificationService delivers in-app messages. User-initiated sends are
// gated by the role message-flow policy; system-originated notifications
// (leave decisions, deactivations) bypass it.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	userRepo         portsrepo.UserReader
	policy           MessageFlowPolicy
	clock            Clock
}

// NewNotificationService creates the notification dispatcher.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, userRepo portsrepo.UserReader, policy MessageFlowPolicy, clock Clock) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		policy:           policy,
		clock:            clock,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Send(ctx context.Context, senderID string, req dto.SendNotificationRequest) (*domain.Notification, error) {
	sender, err := s.userRepo.FindUserByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("resolving sender %s: %w", senderID, err)
	}
	recipient, err := s.userRepo.FindUserByID(ctx, req.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("resolving recipient %s: %w", req.RecipientID, err)
	}

	if !s.policy.Allows(sender.Role, recipient.Role) {
		return nil, apperrors.NewForbiddenError(
			fmt.Sprintf("role %s may not message role %s", sender.Role, recipient.Role))
	}

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		SenderID:       sender.UserID,
		RecipientID:    recipient.UserID,
		Title:          req.Title,
		Message:        req.Message,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return nil, fmt.Errorf("saving notification: %w", err)
	}
	return &notification, nil
}

// SystemNotify persists a system-originated notification without applying the
// message-flow policy. Callers treat failures as non-fatal.
func (s *notificationService) SystemNotify(ctx context.Context, senderID, recipientID, title, message string) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		SenderID:       senderID,
		RecipientID:    recipientID,
		Title:          title,
		Message:        message,
		CreatedAt:      s.clock.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		return fmt.Errorf("saving system notification: %w", err)
	}
	return nil
}

func (s *notificationService) AllowedRecipients(ctx context.Context, senderID string) ([]domain.User, error) {
	sender, err := s.userRepo.FindUserByID(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("resolving sender %s: %w", senderID, err)
	}

	recipients := make([]domain.User, 0)
	for _, role := range s.policy.RecipientRoles(sender.Role) {
		users, err := s.userRepo.FindUsersByRoleAndActive(ctx, role, true)
		if err != nil {
			return nil, fmt.Errorf("listing %s recipients: %w", role, err)
		}
		recipients = append(recipients, users...)
	}
	return recipients, nil
}

func (s *notificationService) ListForRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	return s.notificationRepo.FindNotificationsByRecipient(ctx, recipientID)
}

func (s *notificationService) ListUnreadForRecipient(ctx context.Context, recipientID string) ([]domain.Notification, error) {
	return s.notificationRepo.FindUnreadNotificationsByRecipient(ctx, recipientID)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, recipientID string) (*domain.Notification, error) {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("resolving notification %s: %w", notificationID, err)
	}
	if notification.RecipientID != recipientID {
		return nil, apperrors.NewForbiddenError("notification belongs to another recipient")
	}
	if err := s.notificationRepo.MarkNotificationRead(ctx, notification.NotificationID, s.clock.Now()); err != nil {
		return nil, fmt.Errorf("marking notification %s read: %w", notification.NotificationID, err)
	}
	notification.Read = true
	return notification, nil
}
