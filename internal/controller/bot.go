package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/handlers"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	userService     *service.UserService
	roomService     *service.RoomService
	location        *time.Location
	logger          *zap.Logger
}

func NewBotController(
	token string,
	userService *service.UserService,
	roomService *service.RoomService,
	reservationService *service.ReservationService,
	location *time.Location,
	logger *zap.Logger,
) (*BotController, error) {
	stateManager := state.NewManager()

	cmdHandlers := handlers.NewHandlers(
		userService,
		roomService,
		reservationService,
		stateManager,
		location,
		logger,
	)

	callbackHandler := callbacks.NewHandler(
		userService,
		roomService,
		reservationService,
		stateManager,
		location,
		logger,
	)

	// Текст вне команд уходит в диалоги
	botInstance, err := bot.New(token, bot.WithDefaultHandler(cmdHandlers.HandleTextMessage))
	if err != nil {
		return nil, fmt.Errorf("create bot: %w", err)
	}

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		userService:     userService,
		roomService:     roomService,
		location:        location,
		logger:          logger,
	}, nil
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/rooms", bot.MatchTypeExact, c.handlers.HandleRooms)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/mybookings", bot.MatchTypeExact, c.handlers.HandleMyBookings)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypeExact, c.handlers.HandleToday)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/active", bot.MatchTypeExact, c.handlers.HandleActive)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Команды администратора
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/addroom", bot.MatchTypePrefix, c.handlers.HandleAddRoom)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/adminrooms", bot.MatchTypeExact, c.handlers.HandleAdminRooms)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "rooms", Description: "🏛 Доступные залы"},
		{Command: "mybookings", Description: "📅 Мои брони"},
		{Command: "today", Description: "📆 Брони на сегодня"},
		{Command: "active", Description: "🕐 Актуальные брони"},
		{Command: "cancel", Description: "↩️ Прервать диалог"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает long polling и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}

// NotifyUpcoming напоминает владельцу о скором начале брони
func (c *BotController) NotifyUpcoming(ctx context.Context, reservation *model.Reservation) error {
	user, err := c.userService.GetByID(ctx, reservation.UserID)
	if err != nil {
		return fmt.Errorf("get reservation owner: %w", err)
	}

	if room, err := c.roomService.Get(ctx, reservation.RoomID); err == nil {
		reservation.Room = room
	}

	text := "⏰ Скоро начало брони\n\n" + formatting.FormatReservation(reservation, c.location)
	if _, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: user.TelegramID,
		Text:   text,
	}); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	c.logger.Info("Reminder sent",
		zap.String("reservation_id", reservation.ID),
		zap.Int64("telegram_id", user.TelegramID),
	)
	return nil
}
