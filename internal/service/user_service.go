package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/idgen"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"go.uber.org/zap"
)

// TelegramProfile - данные пользователя из Telegram
type TelegramProfile struct {
	TelegramID   int64
	Username     string
	FirstName    string
	LastName     string
	LanguageCode string
}

type UserService struct {
	userRepo *repository.UserRepository
	ids      idgen.Generator
	clock    Clock
	admins   map[int64]bool
	logger   *zap.Logger
}

func NewUserService(userRepo *repository.UserRepository, ids idgen.Generator, clock Clock, adminTelegramIDs []int64, logger *zap.Logger) *UserService {
	admins := make(map[int64]bool, len(adminTelegramIDs))
	for _, id := range adminTelegramIDs {
		admins[id] = true
	}

	return &UserService{
		userRepo: userRepo,
		ids:      ids,
		clock:    clock,
		admins:   admins,
		logger:   logger,
	}
}

// RegisterUser регистрирует или обновляет пользователя.
// Флаг администратора всегда берётся из конфигурации.
func (s *UserService) RegisterUser(ctx context.Context, profile TelegramProfile) (*model.User, error) {
	existingUser, err := s.userRepo.GetByTelegramID(ctx, profile.TelegramID)
	if err != nil {
		return nil, storageError("check existing user", err)
	}

	isAdmin := s.admins[profile.TelegramID]

	if existingUser != nil {
		existingUser.Username = profile.Username
		existingUser.FirstName = profile.FirstName
		existingUser.LastName = profile.LastName
		existingUser.LanguageCode = profile.LanguageCode
		existingUser.IsAdmin = isAdmin

		if err := s.userRepo.Update(ctx, existingUser); err != nil {
			return nil, storageError("update user", err)
		}

		s.logger.Info("User updated",
			zap.Int64("telegram_id", profile.TelegramID),
			zap.String("username", profile.Username),
		)

		return existingUser, nil
	}

	user := &model.User{
		ID:           s.ids.NewID(),
		TelegramID:   profile.TelegramID,
		Username:     profile.Username,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		LanguageCode: profile.LanguageCode,
		IsAdmin:      isAdmin,
		CreatedAt:    s.clock.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, storageError("create user", err)
	}

	s.logger.Info("New user registered",
		zap.String("user_id", user.ID),
		zap.Int64("telegram_id", profile.TelegramID),
		zap.String("username", profile.Username),
		zap.Bool("is_admin", isAdmin),
	)

	return user, nil
}

// GetByTelegramID получает пользователя по Telegram ID (nil если не зарегистрирован)
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, storageError("get user", err)
	}
	return user, nil
}

// GetByID получает пользователя по ID
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storageError("get user", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return user, nil
}

// IsAdminTelegramID проверяет, указан ли Telegram ID в списке администраторов
func (s *UserService) IsAdminTelegramID(telegramID int64) bool {
	return s.admins[telegramID]
}
