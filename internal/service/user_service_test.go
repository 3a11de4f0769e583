package service_test

import (
	"context"
	"testing"

	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService(admins ...int64) *service.UserService {
	repo := repository.NewUserRepository(memory.NewStore())
	return service.NewUserService(repo, sequentialIDs("user"), service.FixedClock(ts(9, 12, 0)), admins, zap.NewNop())
}

func TestRegisterUser(t *testing.T) {
	users := newUserService(100)
	ctx := context.Background()

	admin, err := users.RegisterUser(ctx, service.TelegramProfile{TelegramID: 100, Username: "boss", FirstName: "Анна"})
	require.NoError(t, err)
	assert.Equal(t, "user-1", admin.ID)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, ts(9, 12, 0), admin.CreatedAt)

	regular, err := users.RegisterUser(ctx, service.TelegramProfile{TelegramID: 200, Username: "guest"})
	require.NoError(t, err)
	assert.False(t, regular.IsAdmin)

	// Повторная регистрация обновляет профиль и сохраняет ID
	again, err := users.RegisterUser(ctx, service.TelegramProfile{TelegramID: 100, Username: "boss2", FirstName: "Анна"})
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)
	assert.Equal(t, "boss2", again.Username)

	found, err := users.GetByTelegramID(ctx, 100)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "boss2", found.Username)

	missing, err := users.GetByTelegramID(ctx, 300)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = users.GetByID(ctx, "nope")
	require.ErrorIs(t, err, service.ErrNotFound)

	assert.True(t, users.IsAdminTelegramID(100))
	assert.False(t, users.IsAdminTelegramID(200))
}
