package service_test

import (
	"context"
	"testing"

	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomServiceCreate(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	ctx := context.Background()

	room, err := env.rooms.Create(ctx, service.RoomInput{
		Name:      "  Переговорная  ",
		Capacity:  6,
		Equipment: []string{" Проектор ", "", "WiFi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, "Переговорная", room.Name)
	assert.True(t, room.Available)
	assert.Equal(t, []string{"Проектор", "WiFi"}, room.Equipment)
	assert.Equal(t, ts(9, 12, 0), room.CreatedAt)

	stored, err := env.rooms.Get(ctx, room.ID)
	require.NoError(t, err)
	assert.Equal(t, room.Name, stored.Name)
}

func TestRoomServiceValidation(t *testing.T) {
	cases := []struct {
		name  string
		input service.RoomInput
	}{
		{"short name", service.RoomInput{Name: " A ", Capacity: 5}},
		{"zero capacity", service.RoomInput{Name: "Зал", Capacity: 0}},
		{"too large", service.RoomInput{Name: "Зал", Capacity: 1001}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			env := newTestEnv(t, ts(9, 12, 0))
			_, err := env.rooms.Create(context.Background(), c.input)
			require.ErrorIs(t, err, service.ErrInvalidRoom)
			assert.Equal(t, service.KindInvalidRoom, service.KindOf(err))
		})
	}
}

func TestRoomServiceUpdate(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	ctx := context.Background()
	env.addRoom(t, "R1", true)

	name := "Новый зал"
	capacity := 42
	room, err := env.rooms.Update(ctx, "R1", service.RoomUpdate{Name: &name, Capacity: &capacity})
	require.NoError(t, err)
	assert.Equal(t, "Новый зал", room.Name)
	assert.Equal(t, 42, room.Capacity)
	assert.True(t, room.Available)

	bad := 0
	_, err = env.rooms.Update(ctx, "R1", service.RoomUpdate{Capacity: &bad})
	require.ErrorIs(t, err, service.ErrInvalidRoom)

	_, err = env.rooms.Update(ctx, "missing", service.RoomUpdate{Name: &name})
	require.ErrorIs(t, err, service.ErrNotFound)

	room, err = env.rooms.SetAvailable(ctx, "R1", false)
	require.NoError(t, err)
	assert.False(t, room.Available)

	available, err := env.rooms.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestRoomServiceDelete(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	ctx := context.Background()
	env.addRoom(t, "R1", true)

	require.NoError(t, env.rooms.Delete(ctx, "R1"))
	require.ErrorIs(t, env.rooms.Delete(ctx, "R1"), service.ErrNotFound)

	_, err := env.rooms.Get(ctx, "R1")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestRoomServiceSearch(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	ctx := context.Background()

	count, err := env.rooms.SeedDemo(ctx)
	require.NoError(t, err)
	require.Equal(t, 5, count)

	_, err = env.rooms.SetAvailable(ctx, "room-5", false)
	require.NoError(t, err)

	big, err := env.rooms.SearchByCapacity(ctx, 20)
	require.NoError(t, err)
	require.Len(t, big, 2)
	assert.Equal(t, "room-1", big[0].ID)
	assert.Equal(t, "room-4", big[1].ID)

	withProjector, err := env.rooms.SearchByEquipment(ctx, "Проектор")
	require.NoError(t, err)
	require.Len(t, withProjector, 2)

	byName, err := env.rooms.SearchByName(ctx, "гамм")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "room-3", byName[0].ID)

	// Отключённый зал в поиск не попадает
	byName, err = env.rooms.SearchByName(ctx, "омега")
	require.NoError(t, err)
	assert.Empty(t, byName)

	all, err := env.rooms.SearchByName(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestRoomServiceSeedDemoOnlyOnce(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	ctx := context.Background()
	env.addRoom(t, "R1", true)

	count, err := env.rooms.SeedDemo(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	rooms, err := env.rooms.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
}

func TestRoomServiceStorageError(t *testing.T) {
	env := newTestEnv(t, ts(9, 12, 0))
	env.store.fail.Store(true)

	_, err := env.rooms.List(context.Background())
	require.ErrorIs(t, err, service.ErrStorage)

	_, err = env.rooms.Create(context.Background(), service.RoomInput{Name: "Зал", Capacity: 3})
	require.ErrorIs(t, err, service.ErrStorage)
}
