package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"newsdesk/internal/api"
	"newsdesk/internal/config"
	"newsdesk/internal/handlers"
	"newsdesk/internal/publisher"
	"newsdesk/internal/service"
	"newsdesk/internal/storage/postgres"
	"newsdesk/internal/telegram"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	admins, err := cfg.Telegram.Admins()
	if err != nil {
		logger.Error("invalid admin ids", "error", err)
		os.Exit(1)
	}
	if len(admins) == 0 {
		logger.Warn("no admin ids configured, every command will be rejected")
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	if cfg.Database.Migrate {
		logger.Info("running database migrations", "path", cfg.Database.MigrationsPath)
		if err := postgres.Migrate(db, cfg.Database.MigrationsPath); err != nil {
			logger.Error("migration failed", "error", err)
			os.Exit(1)
		}
		logger.Info("migrations completed")
	}

	// Post events are optional; a nil interface disables them.
	var events service.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	// Initialize stores
	postStore := postgres.NewPostStore(db)
	applicationStore := postgres.NewApplicationStore(db)

	bot := telegram.New(telegram.Config{
		BaseURL:   cfg.Telegram.BaseURL,
		Token:     cfg.Telegram.BotToken,
		ParseMode: cfg.Telegram.ParseMode,
		Timeout:   cfg.Telegram.Timeout,
	}, logger)

	commands := service.NewCommandRouter(postStore, bot, events, logger, admins, cfg.Posts)

	h := handlers.NewHandler(commands, postStore, applicationStore, db, logger, cfg.Posts.DefaultLanguage)

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      api.NewRouter(h, logger, cfg.Server.MaxBodyBytes),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("starting newsdesk server",
			"addr", cfg.Server.Addr,
			"admins", len(admins),
			"rabbitmq", cfg.RabbitMQ.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", "signal", sig)
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server stopped")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
