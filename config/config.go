package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	SourceFile     = "file"
	SourcePostgres = "postgres"
)

type Config struct {
	Env               string        `env:"ENV" envDefault:"local"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	BooksPerPage      int           `env:"BOOKS_PER_PAGE" envDefault:"36"`
	SessionExpiration time.Duration `env:"SESSION_EXPIRATION" envDefault:"2h"`
	Catalog           Catalog
	Postgres          Postgres
	Redis             Redis
	Telegram          Telegram
	HTTP              HTTP
}

type Catalog struct {
	Source string `env:"CATALOG_SOURCE" envDefault:"file"`
	File   string `env:"CATALOG_FILE" envDefault:"catalog.json"`
}

type Postgres struct {
	Host            string        `env:"PG_HOST" envDefault:"localhost"`
	Port            int           `env:"PG_PORT" envDefault:"5432"`
	DbName          string        `env:"PG_DB_NAME" envDefault:"catalog"`
	Password        string        `env:"PG_PASSWORD" envDefault:""`
	User            string        `env:"PG_USER" envDefault:"postgres"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"1h"`
	ConnMaxIdleTime time.Duration `env:"PG_CONN_MAX_IDLE_TIME" envDefault:"10m"`
	Migrate         bool          `env:"PG_MIGRATE" envDefault:"true"`
}

type Redis struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type Telegram struct {
	Enabled    bool          `env:"TELEGRAM_ENABLED" envDefault:"false"`
	Token      string        `env:"TELEGRAM_TOKEN" envDefault:""`
	UpdTimeout time.Duration `env:"TELEGRAM_UPD_TIMEOUT" envDefault:"10s"`
}

type HTTP struct {
	Enabled bool   `env:"HTTP_ENABLED" envDefault:"true"`
	Addr    string `env:"HTTP_ADDR" envDefault:":8080"`
}

func (p Postgres) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     net.JoinHostPort(p.Host, strconv.Itoa(p.Port)),
		Path:     p.DbName,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}

func (r Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

func MustLoad() *Config {
	_ = godotenv.Load(".env")

	cfg, err := Load()
	if err != nil {
		log.Fatalf("parse config error: %s", err)
	}

	return cfg
}

func Load() (*Config, error) {
	cfg := &Config{}

	opts := env.Options{RequiredIfNoDef: true}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.BooksPerPage <= 0 {
		return errors.New("BOOKS_PER_PAGE must be positive")
	}

	switch c.Catalog.Source {
	case SourceFile, SourcePostgres:
	default:
		return fmt.Errorf("unknown CATALOG_SOURCE %q", c.Catalog.Source)
	}

	if c.Telegram.Enabled && c.Telegram.Token == "" {
		return errors.New("TELEGRAM_TOKEN is required when TELEGRAM_ENABLED is set")
	}

	return nil
}
