package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository/base"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
)

type ReservationRepository struct {
	reservations *base.Collection[model.Reservation]
}

func NewReservationRepository(store storage.Store) *ReservationRepository {
	return &ReservationRepository{
		reservations: base.NewCollection[model.Reservation](store, storage.KeyReservations),
	}
}

// GetAll получает все брони, включая отменённые
func (r *ReservationRepository) GetAll(ctx context.Context) ([]*model.Reservation, error) {
	reservations, err := r.reservations.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get reservations: %w", err)
	}
	return reservations, nil
}

// GetByID получает бронь по ID (nil если не найдена)
func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	reservation, err := r.reservations.Find(ctx, func(res *model.Reservation) bool { return res.ID == id })
	if err != nil {
		return nil, fmt.Errorf("get reservation by id: %w", err)
	}
	return reservation, nil
}

// GetByUserID получает все брони пользователя
func (r *ReservationRepository) GetByUserID(ctx context.Context, userID string) ([]*model.Reservation, error) {
	reservations, err := r.reservations.Filter(ctx, func(res *model.Reservation) bool {
		return res.UserID == userID
	})
	if err != nil {
		return nil, fmt.Errorf("get reservations by user: %w", err)
	}
	return reservations, nil
}

// GetActiveByRoomID получает не отменённые брони зала
func (r *ReservationRepository) GetActiveByRoomID(ctx context.Context, roomID string) ([]*model.Reservation, error) {
	reservations, err := r.reservations.Filter(ctx, func(res *model.Reservation) bool {
		return res.RoomID == roomID && res.IsActive()
	})
	if err != nil {
		return nil, fmt.Errorf("get active reservations by room: %w", err)
	}
	return reservations, nil
}

// GetActive получает все не отменённые брони
func (r *ReservationRepository) GetActive(ctx context.Context) ([]*model.Reservation, error) {
	reservations, err := r.reservations.Filter(ctx, func(res *model.Reservation) bool {
		return res.IsActive()
	})
	if err != nil {
		return nil, fmt.Errorf("get active reservations: %w", err)
	}
	return reservations, nil
}

// Create добавляет бронь
func (r *ReservationRepository) Create(ctx context.Context, reservation *model.Reservation) error {
	stored := reservation.Clone()
	err := r.reservations.Mutate(ctx, func(reservations []*model.Reservation) ([]*model.Reservation, error) {
		return append(reservations, stored), nil
	})
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

// UpdateStatus меняет статус и updated_at, возвращает обновлённую запись
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status model.ReservationStatus, apply func(*model.Reservation) error) (*model.Reservation, error) {
	var updated *model.Reservation

	err := r.reservations.Mutate(ctx, func(reservations []*model.Reservation) ([]*model.Reservation, error) {
		for _, res := range reservations {
			if res.ID != id {
				continue
			}
			if err := apply(res); err != nil {
				return nil, err
			}
			res.Status = status
			updated = res.Clone()
			return reservations, nil
		}
		return nil, base.ErrNotFound
	})
	if err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}

	return updated, nil
}

// Delete физически удаляет бронь
func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	err := r.reservations.Mutate(ctx, func(reservations []*model.Reservation) ([]*model.Reservation, error) {
		filtered := reservations[:0]
		for _, res := range reservations {
			if res.ID != id {
				filtered = append(filtered, res)
			}
		}
		if len(filtered) == len(reservations) {
			return nil, base.ErrNotFound
		}
		return filtered, nil
	})
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	return nil
}
