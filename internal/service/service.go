package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/raksika249/ecom-auth-service/internal/domain"
	"github.com/raksika249/ecom-auth-service/internal/storage"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const defaultRole = "user"

const (
	welcomeMessage       = "Welcome! Your account has been created successfully 🎉"
	loginMessage         = "Login successful"
	notificationTypeAuth = "auth"
)

type Config struct {
	Secret     string
	TokenTTL   time.Duration
	BcryptCost int
}

type AuthService struct {
	users         storage.UserStorage
	notifications storage.NotificationStorage
	cfg           Config
	log           *logrus.Logger
}

func New(cfg Config, users storage.UserStorage, notifications storage.NotificationStorage, log *logrus.Logger) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		users:         users,
		notifications: notifications,
		cfg:           cfg,
		log:           log,
	}
}

// Register creates a user keyed by email. The user write is critical, the
// welcome notification is not.
func (s *AuthService) Register(ctx context.Context, email, password, name string) error {
	_, err := s.users.GetUser(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	user := domain.User{
		Email:        email,
		UserID:       uuid.NewString(),
		Name:         name,
		PasswordHash: string(hash),
		Role:         defaultRole,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.PutUser(ctx, user); err != nil {
		return err
	}

	s.bestEffort("welcome notification", func() error {
		return s.notifications.PutNotification(ctx, domain.Notification{
			NotificationID: uuid.NewString(),
			UserID:         user.UserID,
			Email:          user.Email,
			Message:        welcomeMessage,
			CreatedAt:      time.Now().UTC(),
		})
	})
	return nil
}

type Notice struct {
	Message string
	Type    string
}

type Session struct {
	Token  string
	Role   string
	Notice Notice
}

// Login verifies the credentials and issues a signed session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.GetUser(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return Session{}, ErrUserNotFound
	}
	if err != nil {
		return Session{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return Session{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return Session{}, err
	}

	s.bestEffort("login notification", func() error {
		return s.notifications.PutNotification(ctx, domain.Notification{
			NotificationID: uuid.NewString(),
			UserEmail:      email,
			Message:        loginMessage,
			Type:           notificationTypeAuth,
			CreatedAt:      time.Now().UTC(),
		})
	})

	return Session{
		Token: token,
		Role:  user.Role,
		Notice: Notice{
			Message: loginMessage,
			Type:    notificationTypeAuth,
		},
	}, nil
}

// bestEffort runs a non-critical write. Its failure must never surface to
// the caller, only to the log.
func (s *AuthService) bestEffort(op string, fn func() error) {
	if err := fn(); err != nil {
		s.log.WithError(err).Warnf("%s failed (ignored)", op)
	}
}
