package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

const configFile = "configs/server.toml"

type Server struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Debug bool   `toml:"debug_mode"`
}

type Auth struct {
	Secret     string `toml:"secret"`
	Expiration string `toml:"expiration"`
	BcryptCost int    `toml:"bcrypt_cost"`

	TokenTTL time.Duration `toml:"-"`
}

type Storage struct {
	// Backend is "dynamo" (default), "sqlite" or "mem".
	Backend            string `toml:"backend"`
	UsersTable         string `toml:"users_table"`
	NotificationsTable string `toml:"notifications_table"`
	Region             string `toml:"region"`
	Endpoint           string `toml:"endpoint"`
	AccessKeyID        string `toml:"access_key_id"`
	SecretAccessKey    string `toml:"secret_access_key"`
	SqliteFile         string `toml:"sqlite_file"`
}

type Config struct {
	Server  Server
	Auth    Auth
	Storage Storage
}

// New reads the optional TOML file, applies environment overrides and
// validates everything the process cannot start without.
func New() (Config, error) {
	cfg := Config{
		Server: Server{
			Port: 3000,
		},
		Auth: Auth{
			Expiration: "1h",
		},
		Storage: Storage{
			Backend:    "dynamo",
			SqliteFile: "auth.sqlite",
		},
	}
	if _, err := os.Stat(configFile); err == nil {
		if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	overrideString(&cfg.Server.Host, "SERVER_HOST")
	if err := overrideInt(&cfg.Server.Port, "SERVER_PORT"); err != nil {
		return Config{}, err
	}
	overrideString(&cfg.Auth.Secret, "JWT_SECRET")
	overrideString(&cfg.Auth.Expiration, "JWT_EXPIRATION")
	overrideString(&cfg.Storage.Backend, "AUTH_STORAGE")
	overrideString(&cfg.Storage.UsersTable, "USERS_TABLE")
	overrideString(&cfg.Storage.NotificationsTable, "NOTIFICATIONS_TABLE")
	overrideString(&cfg.Storage.Region, "AWS_REGION")
	overrideString(&cfg.Storage.Endpoint, "AWS_ENDPOINT")
	overrideString(&cfg.Storage.SqliteFile, "SQLITE_FILE")

	ttl, err := time.ParseDuration(cfg.Auth.Expiration)
	if err != nil {
		return Config{}, errors.New("invalid token expiration: " + cfg.Auth.Expiration)
	}
	cfg.Auth.TokenTTL = ttl

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Missing required settings are a deployment error, the process must not
// come up without them.
func (c Config) validate() error {
	var err error
	if c.Auth.Secret == "" {
		err = errors.Join(err, errors.New("token signing secret is required (JWT_SECRET)"))
	}
	if c.Storage.Backend == "dynamo" {
		if c.Storage.UsersTable == "" {
			err = errors.Join(err, errors.New("user store name is required (USERS_TABLE)"))
		}
		if c.Storage.NotificationsTable == "" {
			err = errors.Join(err, errors.New("notification store name is required (NOTIFICATIONS_TABLE)"))
		}
	}
	return err
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.New("invalid " + key + ": " + v)
	}
	*dst = n
	return nil
}
