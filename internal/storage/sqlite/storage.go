package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/raksika249/ecom-auth-service/internal/domain"
	"github.com/raksika249/ecom-auth-service/internal/migrate"
	"github.com/raksika249/ecom-auth-service/internal/storage"
)

type Storage struct {
	db *sqlx.DB
}

var _ storage.UserStorage = (*Storage)(nil)
var _ storage.NotificationStorage = (*Storage)(nil)

func New(file string) (*Storage, error) {
	db, err := sqlx.Open("sqlite3", "file:"+file+"?cache=shared&_loc=UTC")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	if err := migrate.Up(db.DB); err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) GetUser(ctx context.Context, email string) (domain.User, error) {
	var user domain.User
	err := s.db.GetContext(ctx, &user,
		`SELECT email, user_id, name, password_hash, role, created_at
		 FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, storage.ErrNotFound
	}
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (s *Storage) PutUser(ctx context.Context, user domain.User) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (email, user_id, name, password_hash, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		user.Email, user.UserID, user.Name, user.PasswordHash, user.Role,
		user.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Storage) PutNotification(ctx context.Context, n domain.Notification) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO notifications (notification_id, user_id, email, user_email, message, type, is_read, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		n.NotificationID, n.UserID, n.Email, n.UserEmail, n.Message, n.Type, n.IsRead,
		n.CreatedAt.UTC().Format(time.RFC3339Nano))
	return err
}
