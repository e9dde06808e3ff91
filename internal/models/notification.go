package models

import "time"

// Notification represents one in-app message row.
type Notification struct {
	NotificationID string    `json:"notificationID" db:"notification_id"`
	SenderID       string    `json:"senderID" db:"sender_id"`
	RecipientID    string    `json:"recipientID" db:"recipient_id"`
	Title          string    `json:"title" db:"title"`
	Message        string    `json:"message" db:"message"`
	Read           bool      `json:"read" db:"read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
