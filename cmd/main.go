package main

import (
	"context"
	"fmt"
	"os"

	"github.com/raksika249/ecom-auth-service/internal/config"
	"github.com/raksika249/ecom-auth-service/internal/logger"
	"github.com/raksika249/ecom-auth-service/internal/service"
	"github.com/raksika249/ecom-auth-service/internal/storage"
	"github.com/raksika249/ecom-auth-service/internal/storage/dynamo"
	"github.com/raksika249/ecom-auth-service/internal/storage/mem"
	"github.com/raksika249/ecom-auth-service/internal/storage/sqlite"
	"github.com/raksika249/ecom-auth-service/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	users, notifications, err := buildStorage(context.Background(), cfg.Storage)
	if err != nil {
		return err
	}

	authService := service.New(service.Config{
		Secret:     cfg.Auth.Secret,
		TokenTTL:   cfg.Auth.TokenTTL,
		BcryptCost: cfg.Auth.BcryptCost,
	}, users, notifications, log)

	server := web.New(cfg.Server, authService, log)
	log.WithField("port", cfg.Server.Port).
		WithField("storage", cfg.Storage.Backend).
		Info("starting auth server")
	return server.Serve()
}

func buildStorage(ctx context.Context, cfg config.Storage) (storage.UserStorage, storage.NotificationStorage, error) {
	switch cfg.Backend {
	case "sqlite":
		db, err := sqlite.New(cfg.SqliteFile)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case "mem":
		db := mem.New()
		return db, db, nil
	case "dynamo":
		db, err := dynamo.New(ctx, dynamo.Config{
			Region:             cfg.Region,
			Endpoint:           cfg.Endpoint,
			AccessKeyID:        cfg.AccessKeyID,
			SecretAccessKey:    cfg.SecretAccessKey,
			UsersTable:         cfg.UsersTable,
			NotificationsTable: cfg.NotificationsTable,
		})
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
