package domain

import "time"

// User is keyed by email, at most one record per address.
type User struct {
	Email        string    `json:"email" db:"email" dynamodbav:"email"`
	UserID       string    `json:"userId" db:"user_id" dynamodbav:"userId"`
	Name         string    `json:"name" db:"name" dynamodbav:"name"`
	PasswordHash string    `json:"-" db:"password_hash" dynamodbav:"password"`
	Role         string    `json:"role" db:"role" dynamodbav:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" dynamodbav:"createdAt"`
}
