package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository/base"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
)

type RoomRepository struct {
	rooms *base.Collection[model.Room]
}

func NewRoomRepository(store storage.Store) *RoomRepository {
	return &RoomRepository{rooms: base.NewCollection[model.Room](store, storage.KeyRooms)}
}

// GetAll получает все залы в порядке хранения
func (r *RoomRepository) GetAll(ctx context.Context) ([]*model.Room, error) {
	rooms, err := r.rooms.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get rooms: %w", err)
	}
	return rooms, nil
}

// GetByID получает зал по ID (nil если не найден)
func (r *RoomRepository) GetByID(ctx context.Context, id string) (*model.Room, error) {
	room, err := r.rooms.Find(ctx, func(room *model.Room) bool { return room.ID == id })
	if err != nil {
		return nil, fmt.Errorf("get room by id: %w", err)
	}
	return room, nil
}

// Create добавляет зал
func (r *RoomRepository) Create(ctx context.Context, room *model.Room) error {
	err := r.rooms.Mutate(ctx, func(rooms []*model.Room) ([]*model.Room, error) {
		return append(rooms, room), nil
	})
	if err != nil {
		return fmt.Errorf("create room: %w", err)
	}
	return nil
}

// CreateMany записывает набор залов одной операцией
func (r *RoomRepository) CreateMany(ctx context.Context, newRooms []*model.Room) error {
	err := r.rooms.Mutate(ctx, func(rooms []*model.Room) ([]*model.Room, error) {
		return append(rooms, newRooms...), nil
	})
	if err != nil {
		return fmt.Errorf("create rooms: %w", err)
	}
	return nil
}

// Update заменяет зал с тем же ID
func (r *RoomRepository) Update(ctx context.Context, room *model.Room) error {
	err := r.rooms.Mutate(ctx, func(rooms []*model.Room) ([]*model.Room, error) {
		for i := range rooms {
			if rooms[i].ID == room.ID {
				rooms[i] = room
				return rooms, nil
			}
		}
		return nil, base.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("update room: %w", err)
	}
	return nil
}

// Delete удаляет зал. Брони зала не трогаются.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	err := r.rooms.Mutate(ctx, func(rooms []*model.Room) ([]*model.Room, error) {
		filtered := rooms[:0]
		for _, room := range rooms {
			if room.ID != id {
				filtered = append(filtered, room)
			}
		}
		if len(filtered) == len(rooms) {
			return nil, base.ErrNotFound
		}
		return filtered, nil
	})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}
