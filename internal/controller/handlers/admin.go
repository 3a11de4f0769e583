package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const addRoomUsage = "Формат: /addroom Название; вместимость; оборудование через запятую; описание\n" +
	"Например: /addroom Переговорная 3; 6; Телевизор, WiFi"

var errRoomArgs = errors.New("expected at least name and capacity")

// HandleAddRoom обрабатывает /addroom Название; вместимость; оборудование; описание
func (h *Handlers) HandleAddRoom(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireAdmin(ctx, b, update); !ok {
		return
	}

	chatID := update.Message.Chat.ID
	input, err := parseRoomArgs(strings.TrimPrefix(update.Message.Text, "/addroom"))
	if err != nil {
		h.sendError(ctx, b, chatID, "❌ "+addRoomUsage)
		return
	}

	room, err := h.roomService.Create(ctx, input)
	if err != nil {
		h.logger.Warn("Failed to create room", zap.Error(err))
		h.sendError(ctx, b, chatID, h.serviceErrorText(err))
		return
	}

	h.sendMessage(ctx, b, chatID, "✅ Зал добавлен\n\n"+formatting.FormatRoom(room), keyboard.RoomDetails(room))
}

// HandleAdminRooms показывает все залы с кнопками управления
func (h *Handlers) HandleAdminRooms(ctx context.Context, b *bot.Bot, update *models.Update) {
	if _, ok := h.requireAdmin(ctx, b, update); !ok {
		return
	}

	rooms, err := h.roomService.List(ctx)
	if err != nil {
		h.logger.Error("Failed to list rooms", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, h.serviceErrorText(err))
		return
	}

	if len(rooms) == 0 {
		h.sendMessage(ctx, b, update.Message.Chat.ID, "🏛 Залов пока нет.\n\n"+addRoomUsage, nil)
		return
	}

	text := fmt.Sprintf("🔑 Управление залами: %d %s", len(rooms), formatting.PluralizeRooms(len(rooms)))
	h.sendMessage(ctx, b, update.Message.Chat.ID, text, keyboard.AdminRooms(rooms))
}

// parseRoomArgs разбирает "Название; вместимость; оборудование, ...; описание"
func parseRoomArgs(args string) (service.RoomInput, error) {
	parts := strings.Split(args, ";")
	if len(parts) < 2 {
		return service.RoomInput{}, errRoomArgs
	}

	capacity, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return service.RoomInput{}, fmt.Errorf("capacity: %w", err)
	}

	input := service.RoomInput{
		Name:     strings.TrimSpace(parts[0]),
		Capacity: capacity,
	}
	if len(parts) > 2 && strings.TrimSpace(parts[2]) != "" {
		input.Equipment = strings.Split(parts[2], ",")
	}
	if len(parts) > 3 {
		input.Description = strings.TrimSpace(strings.Join(parts[3:], ";"))
	}
	return input, nil
}
