package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"book_catalog/config"
	"book_catalog/data/db/postgres"
	redisClient "book_catalog/data/redis"
	"book_catalog/data/session"
	"book_catalog/data/source"
	"book_catalog/internal/model"
	"book_catalog/internal/repository"
	"book_catalog/internal/service/catalogService"
	"book_catalog/internal/tgbot"
	"book_catalog/internal/transport/telegram"
	"book_catalog/internal/transport/web"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog := mustLoadCatalog(ctx, cfg)

	redisClient := redisClient.MustInitRedis(cfg)
	defer redisClient.Close()

	redisSession := session.NewRedisSession(redisClient, cfg.SessionExpiration)

	catalogService := catalogService.New(cfg, catalog, redisSession)

	if cfg.Telegram.Enabled {
		tgController := telegram.NewController(cfg, catalogService)

		tgBot := tgbot.New(cfg, tgController)

		tgBot.Start()
		defer tgBot.Stop()
	}

	if cfg.HTTP.Enabled {
		httpServer := web.NewServer(cfg, web.NewHandler(catalogService))

		httpServer.Start()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			httpServer.Stop(shutdownCtx)
		}()
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-interrupt
}

func mustLoadCatalog(ctx context.Context, cfg *config.Config) model.Catalog {
	var (
		catalog model.Catalog
		err     error
	)

	switch cfg.Catalog.Source {
	case config.SourcePostgres:
		postgresDb := postgres.NewPostgresClient(cfg)
		defer postgresDb.Close()

		if cfg.Postgres.Migrate {
			if err = postgres.Migrate(postgresDb); err != nil {
				slog.Error("can't apply migrations", slog.String("err", err.Error()))
				panic(err)
			}
		}

		catalog, err = repository.NewPostgresRepo(postgresDb).LoadCatalog(ctx)
	default:
		catalog, err = source.NewJSONFile(cfg.Catalog.File).LoadCatalog(ctx)
	}

	if err != nil {
		slog.Error("can't load catalog", slog.String("source", cfg.Catalog.Source), slog.String("err", err.Error()))
		panic(err)
	}

	return catalog
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
