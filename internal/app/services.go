package app

import (
	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/events"
	"github.com/Freeeeeet/room_booking_bot/internal/idgen"
	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
	"go.uber.org/zap"
)

// Services - собранный слой бизнес-логики
type Services struct {
	Rooms        *service.RoomService
	Reservations *service.ReservationService
	Users        *service.UserService
}

// NewServices создаёт репозитории и сервисы поверх одного хранилища
func NewServices(store storage.Store, cfg *config.Config, publisher events.Publisher, logger *zap.Logger) *Services {
	ids := idgen.New()
	clock := service.RealClock{}

	roomRepo := repository.NewRoomRepository(store)
	reservationRepo := repository.NewReservationRepository(store)
	userRepo := repository.NewUserRepository(store)

	return &Services{
		Rooms: service.NewRoomService(roomRepo, ids, clock, logger.Named("rooms")),
		Reservations: service.NewReservationService(roomRepo, reservationRepo, logger.Named("reservations"),
			service.WithIDGenerator(ids),
			service.WithClock(clock),
			service.WithPublisher(publisher),
			service.WithLimits(timerange.Limits{
				MinMinutes: cfg.BookingMinMinutes,
				MaxMinutes: cfg.BookingMaxMinutes,
			}),
		),
		Users: service.NewUserService(userRepo, ids, clock, cfg.AdminTelegramIDs, logger.Named("users")),
	}
}
