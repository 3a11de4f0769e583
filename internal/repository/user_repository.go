package repository

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository/base"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
)

type UserRepository struct {
	users *base.Collection[model.User]
}

func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{users: base.NewCollection[model.User](store, storage.KeyUsers)}
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := r.users.Find(ctx, func(u *model.User) bool { return u.TelegramID == telegramID })
	if err != nil {
		return nil, fmt.Errorf("get user by telegram id: %w", err)
	}
	return user, nil
}

// GetByID получает пользователя по ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := r.users.Find(ctx, func(u *model.User) bool { return u.ID == id })
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

// Create создаёт нового пользователя
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	err := r.users.Mutate(ctx, func(users []*model.User) ([]*model.User, error) {
		return append(users, user), nil
	})
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Update обновляет данные пользователя
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	err := r.users.Mutate(ctx, func(users []*model.User) ([]*model.User, error) {
		for i := range users {
			if users[i].ID == user.ID {
				users[i] = user
				return users, nil
			}
		}
		return nil, base.ErrNotFound
	})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
