package service_test

import (
	"context"
	"testing"

	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityCheck(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	env.addRoom(t, "R1", true)
	env.addRoom(t, "R2", true)
	ctx := context.Background()

	res := env.book(t, "R1", ts(10, 9, 0), ts(10, 10, 0))

	availability, err := env.reservations.CheckAvailability(ctx, "R1", ts(10, 9, 30), ts(10, 10, 30), "")
	require.NoError(t, err)
	assert.False(t, availability.Available)
	require.Len(t, availability.Conflicts, 1)
	assert.Equal(t, res.ID, availability.Conflicts[0].ID)

	// Исключённая бронь не считается конфликтом
	availability, err = env.reservations.CheckAvailability(ctx, "R1", ts(10, 9, 30), ts(10, 10, 30), res.ID)
	require.NoError(t, err)
	assert.True(t, availability.Available)
	assert.NotNil(t, availability.Conflicts)
	assert.Empty(t, availability.Conflicts)

	availability, err = env.reservations.CheckAvailability(ctx, "R1", ts(10, 10, 0), ts(10, 11, 0), "")
	require.NoError(t, err)
	assert.True(t, availability.Available)

	availability, err = env.reservations.CheckAvailability(ctx, "R2", ts(10, 9, 0), ts(10, 10, 0), "")
	require.NoError(t, err)
	assert.True(t, availability.Available)

	env.store.fail.Store(true)
	_, err = env.reservations.CheckAvailability(ctx, "R1", ts(10, 9, 0), ts(10, 10, 0), "")
	require.ErrorIs(t, err, service.ErrStorage)
}
