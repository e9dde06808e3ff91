package dto

import (
	"time"

	"github.com/staffbridge/workforce_backend/internal/core/domain"
)

// SendNotificationRequest defines the data for a user-initiated notification.
type SendNotificationRequest struct {
	RecipientID string `json:"recipientID" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Message     string `json:"message" binding:"required"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationID"`
	SenderID       string    `json:"senderID"`
	RecipientID    string    `json:"recipientID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification to a response DTO.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		SenderID:       n.SenderID,
		RecipientID:    n.RecipientID,
		Title:          n.Title,
		Message:        n.Message,
		Read:           n.Read,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationResponse converts a slice of notifications to response DTOs.
func ToListNotificationResponse(notifications []domain.Notification) []NotificationResponse {
	res := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		res[i] = ToNotificationResponse(&notifications[i])
	}
	return res
}
