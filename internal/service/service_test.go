package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/raksika249/ecom-auth-service/internal/domain"
	"github.com/raksika249/ecom-auth-service/internal/storage"
	"github.com/raksika249/ecom-auth-service/internal/storage/mem"
)

func newTestService(t *testing.T) (*AuthService, *mem.Storage) {
	t.Helper()
	store := mem.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := New(Config{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, store, store, log)
	return svc, store
}

func TestRegister(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	err := svc.Register(ctx, "a@x.com", "pw123456", "A")
	require.NoError(t, err)

	user, err := store.GetUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	assert.Equal(t, "user", user.Role)
	assert.NotEmpty(t, user.UserID)
	assert.NotEqual(t, "pw123456", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123456")))

	notifications := store.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, user.UserID, notifications[0].UserID)
	assert.Equal(t, "a@x.com", notifications[0].Email)
	// Only login notifications are typed "auth", welcome ones carry no type.
	assert.Empty(t, notifications[0].Type)
	assert.False(t, notifications[0].IsRead)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw123456", "A"))

	// Other fields must not matter, only the email key.
	err := svc.Register(ctx, "a@x.com", "other-password", "B")
	require.ErrorIs(t, err, ErrEmailTaken)

	user, err := store.GetUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "A", user.Name)
	assert.Len(t, store.Notifications(), 1)
}

type failingNotifications struct{}

func (failingNotifications) PutNotification(context.Context, domain.Notification) error {
	return errors.New("notification store down")
}

func TestNotificationFailureIsIgnored(t *testing.T) {
	store := mem.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := New(Config{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, store, failingNotifications{}, log)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw123456", "A"))

	session, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

type failingUsers struct{}

func (failingUsers) GetUser(context.Context, string) (domain.User, error) {
	return domain.User{}, storage.ErrNotFound
}

func (failingUsers) PutUser(context.Context, domain.User) error {
	return errors.New("users store down")
}

func TestRegisterUserWriteFailure(t *testing.T) {
	notifications := mem.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := New(Config{
		Secret:     "test-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}, failingUsers{}, notifications, log)

	err := svc.Register(context.Background(), "a@x.com", "pw123456", "A")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrEmailTaken)
	// The critical write failed, so the welcome notification must not follow.
	assert.Empty(t, notifications.Notifications())
}

func TestLogin(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw123456", "A"))

	session, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "user", session.Role)
	assert.Equal(t, "Login successful", session.Notice.Message)
	assert.Equal(t, "auth", session.Notice.Type)

	claims, err := svc.ParseToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), claims.ExpiresAt, 5)

	// One for the registration, one for the login.
	notifications := store.Notifications()
	require.Len(t, notifications, 2)
	assert.Equal(t, "a@x.com", notifications[1].UserEmail)
	assert.Equal(t, "auth", notifications[1].Type)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nouser@x.com", "x")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw123456", "A"))
	before, err := store.GetUser(ctx, "a@x.com")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, "a@x.com", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}

	// Failed attempts must not touch the record.
	after, err := store.GetUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestParseTokenWrongSecret(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, "a@x.com", "pw123456", "A"))
	session, err := svc.Login(ctx, "a@x.com", "pw123456")
	require.NoError(t, err)

	store := mem.New()
	log := logrus.New()
	log.SetOutput(io.Discard)
	other := New(Config{Secret: "other-secret", TokenTTL: time.Hour}, store, store, log)
	_, err = other.ParseToken(session.Token)
	require.Error(t, err)
}
