package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		bootLogger := logrus.New()
		bootLogger.SetOutput(os.Stdout)
		var cfgErr *config.ConfigurationError
		if errors.As(err, &cfgErr) {
			bootLogger.Infof("Supported configuration:\n%s", config.Usage())
		}
		bootLogger.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	log := logger.New(cfg)
	mainLogger := logger.Named(log, "main")
	mainLogger.WithFields(logrus.Fields{
		"environment":   cfg.Environment,
		"poll_schedule": cfg.PollSchedule,
		"endpoint":      cfg.PracticumEndpoint,
	}).Info("Configuration loaded")

	schedule, err := scheduler.ParseSchedule(cfg.PollSchedule)
	if err != nil {
		mainLogger.WithError(err).Fatal("FATAL: Could not parse poll schedule")
	}

	// Initialize Telegram Bot
	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramOffline)
	if err != nil {
		mainLogger.WithError(err).Fatal("FATAL: Could not create Telegram bot")
	}
	telegramClient := telegram.NewTelebotAdapter(bot)
	mainLogger.Info("Telegram client initialized.")

	notifier := app.NewNotifier(telegramClient, cfg.TelegramChatID, cfg.TelegramRatePerSec, logger.Named(log, "notifier"))
	reporter := app.NewErrorReporter(notifier, cfg.ErrorRenotifyInterval, logger.Named(log, "errors"))

	practicumClient := practicum.NewClient(cfg.PracticumToken, cfg.PracticumEndpoint, cfg.HTTPTimeout, logger.Named(log, "practicum"))
	statusService := app.NewStatusService(practicumClient, notifier, reporter, time.Now(), logger.Named(log, "status"))

	pollScheduler := scheduler.NewPollScheduler(statusService.Poll, schedule, logger.Named(log, "scheduler"))

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mainLogger.Info("Application setup complete. Poller is starting...")
	pollScheduler.Run(ctx)
	mainLogger.Info("Application shut down gracefully.")
}
