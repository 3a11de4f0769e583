package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/room_booking_bot/internal/app"
	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/controller"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("Bot stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	if cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_TOKEN is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting room booking bot",
		zap.String("environment", cfg.Environment),
		zap.String("storage", cfg.StorageDriver),
		zap.String("timezone", cfg.Timezone),
		zap.Int("admins", len(cfg.AdminTelegramIDs)),
	)

	store, closeStore, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher, closePublisher, err := app.OpenPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	services := app.NewServices(store, cfg, publisher, logger)

	if cfg.SeedDemoData {
		if _, err := services.Rooms.SeedDemo(ctx); err != nil {
			return err
		}
	}

	botController, err := controller.NewBotController(
		cfg.TelegramToken,
		services.Users,
		services.Rooms,
		services.Reservations,
		cfg.Location,
		logger.Named("bot"),
	)
	if err != nil {
		return err
	}

	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Bot commands menu was not updated", zap.Error(err))
	}

	scheduler := app.NewScheduler(services.Reservations, botController, service.RealClock{}, cfg.ReminderLead, logger.Named("scheduler"))
	scheduler.Start(ctx)
	defer scheduler.Stop()

	botController.Start(ctx)
	logger.Info("Bot stopped")
	return nil
}
