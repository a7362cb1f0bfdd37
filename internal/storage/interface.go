package storage

import (
	"context"
	"errors"

	"github.com/raksika249/ecom-auth-service/internal/domain"
)

// ErrNotFound is returned by point lookups when no record exists at the key.
var ErrNotFound = errors.New("record not found")

type UserStorage interface {
	GetUser(ctx context.Context, email string) (domain.User, error)
	PutUser(ctx context.Context, user domain.User) error
}

type NotificationStorage interface {
	PutNotification(ctx context.Context, notification domain.Notification) error
}
