package callbacks

import (
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/controller/formatting"
	"github.com/Freeeeeet/room_booking_bot/internal/controller/state"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"go.uber.org/zap"
)

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	UserService        *service.UserService
	RoomService        *service.RoomService
	ReservationService *service.ReservationService
	StateManager       *state.Manager
	Location           *time.Location
	Logger             *zap.Logger
}

func NewHandler(
	userService *service.UserService,
	roomService *service.RoomService,
	reservationService *service.ReservationService,
	stateManager *state.Manager,
	location *time.Location,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		UserService:        userService,
		RoomService:        roomService,
		ReservationService: reservationService,
		StateManager:       stateManager,
		Location:           location,
		Logger:             logger,
	}
}

func (h *Handler) errorText(err error) string {
	return formatting.ErrorMessage(err, h.ReservationService.Limits(), h.Location)
}
