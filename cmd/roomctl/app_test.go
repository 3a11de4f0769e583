package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRuntime() (*runtime, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{
		Environment:       "test",
		StorageDriver:     config.StorageMemory,
		Location:          time.UTC,
		BookingMinMinutes: 15,
		BookingMaxMinutes: 480,
	}
	return &runtime{cfg: cfg, logger: zap.NewNop(), out: out, store: memory.NewStore()}, out
}

func run(t *testing.T, rt *runtime, out *bytes.Buffer, args ...string) (string, error) {
	t.Helper()
	out.Reset()
	err := newAppWithRuntime(rt).Run(append([]string{"roomctl"}, args...))
	return out.String(), err
}

func TestRoomctlRooms(t *testing.T) {
	rt, out := newTestRuntime()

	text, err := run(t, rt, out, "seed")
	require.NoError(t, err)
	assert.Contains(t, text, "Created 5 demo rooms")

	text, err = run(t, rt, out, "seed")
	require.NoError(t, err)
	assert.Contains(t, text, "nothing to seed")

	_, err = run(t, rt, out, "rooms", "update", "--disable", "room-5")
	require.NoError(t, err)

	text, err = run(t, rt, out, "rooms", "list")
	require.NoError(t, err)
	assert.Contains(t, text, "Зал Альфа")
	assert.NotContains(t, text, "Зал Омега")

	text, err = run(t, rt, out, "rooms", "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, text, "Зал Омега")

	text, err = run(t, rt, out, "rooms", "add", "--name", "Переговорная", "--capacity", "4", "--equipment", "WiFi")
	require.NoError(t, err)
	assert.Contains(t, text, "Переговорная")

	_, err = run(t, rt, out, "rooms", "add", "--name", "X", "--capacity", "4")
	require.ErrorIs(t, err, service.ErrInvalidRoom)

	text, err = run(t, rt, out, "rooms", "search", "--min-capacity", "25")
	require.NoError(t, err)
	assert.Contains(t, text, "room-1")
	assert.NotContains(t, text, "room-2")

	_, err = run(t, rt, out, "rooms", "delete", "missing")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestRoomctlReservations(t *testing.T) {
	rt, out := newTestRuntime()
	_, err := run(t, rt, out, "seed")
	require.NoError(t, err)

	text, err := run(t, rt, out, "reservations", "create",
		"--room", "room-1", "--user", "u1", "--from", "2030-01-10 09:00", "--duration", "1h", "--purpose", "Планёрка")
	require.NoError(t, err)
	assert.Contains(t, text, "10.01.2030 09:00")
	assert.Contains(t, text, "confirmed")

	text, err = run(t, rt, out, "reservations", "create",
		"--room", "room-1", "--user", "u2", "--from", "10.01.2030 09:30", "--till", "10.01.2030 10:30")
	require.ErrorIs(t, err, service.ErrRoomUnavailable)
	assert.Contains(t, text, "Conflicting reservations")

	text, err = run(t, rt, out, "check", "--room", "room-1", "--from", "2030-01-10 10:00", "--duration", "30m")
	require.NoError(t, err)
	assert.Contains(t, text, "Room is free")

	text, err = run(t, rt, out, "check", "--room", "room-1", "--from", "2030-01-10 09:59")
	require.NoError(t, err)
	assert.Contains(t, text, "Room is busy")

	text, err = run(t, rt, out, "reservations", "list", "--date", "10.01.2030")
	require.NoError(t, err)
	assert.Contains(t, text, "Планёрка")

	svc, err := rt.services(context.Background())
	require.NoError(t, err)
	list, err := svc.Reservations.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, list, 1)

	text, err = run(t, rt, out, "reservations", "cancel", list[0].ID)
	require.NoError(t, err)
	assert.Contains(t, text, "cancelled")

	text, err = run(t, rt, out, "reservations", "list", "--room", "room-1")
	require.NoError(t, err)
	assert.NotContains(t, text, list[0].ID)
}

func TestRoomctlIntervalFlags(t *testing.T) {
	rt, out := newTestRuntime()

	_, err := run(t, rt, out, "check", "--room", "room-1", "--from", "2030-01-10 09:00", "--till", "2030-01-10 10:00", "--duration", "1h")
	assert.Error(t, err)

	_, err = run(t, rt, out, "check", "--room", "room-1", "--from", "next monday")
	assert.Error(t, err)
}

func TestRoomctlReset(t *testing.T) {
	rt, out := newTestRuntime()
	_, err := run(t, rt, out, "seed")
	require.NoError(t, err)
	_, err = run(t, rt, out, "reservations", "create",
		"--room", "room-1", "--user", "u1", "--from", "2030-01-10 09:00")
	require.NoError(t, err)

	_, err = run(t, rt, out, "reset", "reservations")
	require.Error(t, err, "reset without --yes must not remove data")

	_, err = run(t, rt, out, "reset", "--yes", "bookings")
	require.Error(t, err)

	text, err := run(t, rt, out, "reset", "--yes", "reservations")
	require.NoError(t, err)
	assert.Contains(t, text, "Collection reservations reset")

	raw, err := rt.store.Get(context.Background(), "reservations")
	require.NoError(t, err)
	assert.Nil(t, raw)

	svc, err := rt.services(context.Background())
	require.NoError(t, err)
	list, err := svc.Reservations.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	rooms, err := svc.Rooms.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, rooms)

	_, err = run(t, rt, out, "reset", "--all", "--yes")
	require.NoError(t, err)
	rooms, err = svc.Rooms.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestRoomctlMigrateRequiresPostgres(t *testing.T) {
	rt, out := newTestRuntime()
	_, err := run(t, rt, out, "migrate")
	assert.Error(t, err)
}
