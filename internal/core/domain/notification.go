package domain

import "time"

// Notification is an in-app message from one user to another. Delivery to a
// recipient is governed by the role message-flow policy; see services.MessageFlowPolicy.
type Notification struct {
	NotificationID string    `json:"notificationID"` // Primary key (UUID)
	SenderID       string    `json:"senderID"`
	RecipientID    string    `json:"recipientID"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}
