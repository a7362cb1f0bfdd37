package domain

import "time"

// Notification is append-only, never mutated after the write.
//
// Welcome notifications reference the user by userId and email, login
// notifications by userEmail only. Both shapes are kept, so the reference
// fields are optional.
type Notification struct {
	NotificationID string    `json:"notificationId" db:"notification_id" dynamodbav:"notificationId"`
	UserID         string    `json:"userId,omitempty" db:"user_id" dynamodbav:"userId,omitempty"`
	Email          string    `json:"email,omitempty" db:"email" dynamodbav:"email,omitempty"`
	UserEmail      string    `json:"userEmail,omitempty" db:"user_email" dynamodbav:"userEmail,omitempty"`
	Message        string    `json:"message" db:"message" dynamodbav:"message"`
	Type           string    `json:"type,omitempty" db:"type" dynamodbav:"type,omitempty"`
	IsRead         bool      `json:"isRead" db:"is_read" dynamodbav:"isRead"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at" dynamodbav:"createdAt"`
}
