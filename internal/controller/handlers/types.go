package handlers

import (
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	userService        *service.UserService
	roomService        *service.RoomService
	reservationService *service.ReservationService
	stateManager       *state.Manager
	location           *time.Location
	logger             *zap.Logger
}

func NewHandlers(
	userService *service.UserService,
	roomService *service.RoomService,
	reservationService *service.ReservationService,
	stateManager *state.Manager,
	location *time.Location,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		userService:        userService,
		roomService:        roomService,
		reservationService: reservationService,
		stateManager:       stateManager,
		location:           location,
		logger:             logger,
	}
}
