package mem

import (
	"context"
	"sync"

	"github.com/raksika249/ecom-auth-service/internal/domain"
	"github.com/raksika249/ecom-auth-service/internal/storage"
)

// Storage keeps everything in process memory. It backs tests and local runs
// where no store service is available.
type Storage struct {
	mu            sync.RWMutex
	users         map[string]domain.User
	notifications []domain.Notification
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		users: make(map[string]domain.User),
	}
}

func (s *Storage) GetUser(_ context.Context, email string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[email]
	if !ok {
		return domain.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Storage) PutUser(_ context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.Email] = user
	return nil
}

func (s *Storage) PutNotification(_ context.Context, notification domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifications = append(s.notifications, notification)
	return nil
}

// Notifications returns a copy of everything written so far.
func (s *Storage) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}
