package postgres

import (
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"book_catalog/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func NewPostgresClient(cfg *config.Config) *sqlx.DB {
	db, err := sqlx.Connect("pgx", cfg.Postgres.DSN())
	if err != nil {
		slog.Error("Error while connecting Postgres", slog.String("err", err.Error()))
		panic(err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Postgres.ConnMaxIdleTime)

	slog.Info("Postgres connected", slog.String("host", cfg.Postgres.Host), slog.String("db", cfg.Postgres.DbName))

	return db
}

func Migrate(db *sqlx.DB) error {
	op := "postgres.Migrate"

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%s: open migrations - %w", op, err)
	}

	driver, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("%s: init driver - %w", op, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		return fmt.Errorf("%s: init migrate - %w", op, err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s: apply migrations - %w", op, err)
	}

	version, dirty, _ := m.Version()
	slog.Info("migrations applied", slog.String("op", op), slog.Any("version", version), slog.Bool("dirty", dirty))

	return nil
}
