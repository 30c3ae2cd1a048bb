package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"debt_reminder/internal/auth"
	"debt_reminder/internal/config"
	"debt_reminder/internal/domain"
	"debt_reminder/internal/httpserver"
	"debt_reminder/internal/repository/store"
	"debt_reminder/internal/service/brevo"
	"debt_reminder/internal/service/reminder"
	"debt_reminder/internal/service/scheduler"
	"debt_reminder/internal/service/sheet"
	"debt_reminder/internal/service/tg"
	"debt_reminder/internal/utils"
	pkg_config "debt_reminder/pkg/config"
	"debt_reminder/pkg/db/postgres"
	"debt_reminder/pkg/db/sqlite"
	"debt_reminder/pkg/masker"
	"debt_reminder/pkg/zaplogger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	logger, err := zaplogger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Config{}
	utils.HandleFatalError(pkg_config.LoadEnv(".env", logger, &cfg), logger, "error loading configs")
	utils.HandleFatalError(masker.LogConfigs(logger, &cfg), logger, "error logging configs")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbGorm, err := openDB(cfg.DBConfig)
	utils.HandleFatalError(err, logger, "error creating gorm connection")
	utils.HandleFatalError(store.Migrate(dbGorm), logger, "error migrating schema")

	clients := store.NewClientRepository(dbGorm)
	admins := store.NewAdminRepository(dbGorm)
	notifications := store.NewNotificationRepository(dbGorm)

	loc, err := time.LoadLocation(cfg.SchedulerConfig.Timezone)
	utils.HandleFatalError(err, logger, "error loading scheduler timezone")

	mailer := brevo.NewClient(cfg.BrevoConfig, logger)

	opts := reminder.Options{AlertPause: cfg.SchedulerConfig.AlertPause, Location: loc}
	if cfg.GoogleSheetConfig.SheetID != "" {
		sheetService, err := sheet.NewSheetService(ctx, cfg.GoogleSheetConfig, sheet.NewDefaultColumnMap())
		utils.HandleFatalError(err, logger, "error creating sheet service")
		opts.Mirror = sheetService
	}
	reminders := reminder.NewService(clients, admins, notifications, mailer, logger, opts)

	var notifier domain.ChatNotifier
	if cfg.TelegramConfig.BotToken != "" {
		n, err := tg.NewNotifier(cfg.TelegramConfig)
		if err != nil {
			logger.Warn("telegram notifier disabled", zap.Error(err))
		} else {
			notifier = n
		}
	}

	sched := scheduler.NewScheduler(admins, reminders, logger, scheduler.Config{
		Interval: cfg.SchedulerConfig.Interval,
		Hours:    cfg.SchedulerConfig.Hours,
		Location: loc,
		Notifier: notifier,
	})
	sched.Start(ctx)
	defer sched.Stop()

	signer := auth.NewSigner(cfg.AuthConfig)
	accounts := auth.NewService(admins, mailer, signer, auth.NewRegistrations(cfg.AuthConfig.OTPTTL), logger)

	srv := &http.Server{
		Addr:              cfg.HTTPConfig.Addr,
		Handler:           httpserver.NewRouter(reminders, accounts, signer, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", zap.Error(err))
	}
}

func openDB(cfg config.DBConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "postgres":
		return postgres.NewGormConnection(cfg)
	case "sqlite":
		return sqlite.NewGormConnection(cfg.SQLitePath)
	default:
		return nil, errors.New("unsupported DB_DRIVER: " + cfg.Driver)
	}
}
