package service

import (
	"context"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
)

// Availability - результат проверки свободности зала
type Availability struct {
	Available bool
	Conflicts []*model.Reservation
}

// AvailabilityChecker ищет конфликтующие брони. Проверка рекомендательная:
// блокировок не берёт и между проверкой и записью может устареть.
type AvailabilityChecker struct {
	reservationRepo *repository.ReservationRepository
}

func NewAvailabilityChecker(reservationRepo *repository.ReservationRepository) *AvailabilityChecker {
	return &AvailabilityChecker{reservationRepo: reservationRepo}
}

// Check проверяет свободен ли зал на [start, end).
// excludeID исключает бронь из проверки (при редактировании), пустая строка - без исключений.
func (c *AvailabilityChecker) Check(ctx context.Context, roomID string, start, end time.Time, excludeID string) (*Availability, error) {
	reservations, err := c.reservationRepo.GetActiveByRoomID(ctx, roomID)
	if err != nil {
		return nil, storageError("check availability", err)
	}

	conflicts := make([]*model.Reservation, 0)
	for _, res := range reservations {
		if excludeID != "" && res.ID == excludeID {
			continue
		}
		if timerange.Overlaps(start, end, res.StartTime, res.EndTime) {
			conflicts = append(conflicts, res)
		}
	}

	return &Availability{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
