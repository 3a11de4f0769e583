// Package events публикует доменные события о бронях.
package events

import (
	"context"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
)

type Type string

const (
	TypeReservationCreated   Type = "reservation.created"
	TypeReservationCancelled Type = "reservation.cancelled"
	TypeReservationDeleted   Type = "reservation.deleted"
)

// ReservationEvent - тело сообщения о брони
type ReservationEvent struct {
	Type          Type                    `json:"type"`
	ReservationID string                  `json:"reservation_id"`
	RoomID        string                  `json:"room_id"`
	UserID        string                  `json:"user_id"`
	StartTime     time.Time               `json:"start_time"`
	EndTime       time.Time               `json:"end_time"`
	Status        model.ReservationStatus `json:"status"`
	OccurredAt    time.Time               `json:"occurred_at"`
}

// NewReservationEvent собирает событие из брони
func NewReservationEvent(t Type, res *model.Reservation, occurredAt time.Time) ReservationEvent {
	return ReservationEvent{
		Type:          t,
		ReservationID: res.ID,
		RoomID:        res.RoomID,
		UserID:        res.UserID,
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		Status:        res.Status,
		OccurredAt:    occurredAt,
	}
}

// Publisher отправляет события. Ошибка публикации не отменяет операцию.
type Publisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

// NopPublisher ничего не отправляет
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ReservationEvent) error { return nil }
