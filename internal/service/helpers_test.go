package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/events"
	"github.com/Freeeeeet/room_booking_bot/internal/idgen"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
	"github.com/Freeeeeet/room_booking_bot/internal/storage/memory"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testClock - часы, которые можно двигать из теста
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// failingStore отвечает ошибкой на все операции, пока включён
type failingStore struct {
	storage.Store
	fail atomic.Bool
}

var errDisk = errors.New("disk unavailable")

func (s *failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.fail.Load() {
		return nil, errDisk
	}
	return s.Store.Get(ctx, key)
}

func (s *failingStore) Put(ctx context.Context, key string, value []byte) error {
	if s.fail.Load() {
		return errDisk
	}
	return s.Store.Put(ctx, key, value)
}

// eventRecorder запоминает опубликованные события
type eventRecorder struct {
	mu     sync.Mutex
	Events []events.ReservationEvent
}

func (r *eventRecorder) Publish(_ context.Context, event events.ReservationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, event)
	return nil
}

type testEnv struct {
	store        *failingStore
	clock        *testClock
	recorder     *eventRecorder
	rooms        *service.RoomService
	reservations *service.ReservationService
	roomRepo     *repository.RoomRepository
	resRepo      *repository.ReservationRepository
}

func sequentialIDs(prefix string) idgen.Generator {
	var n atomic.Int64
	return idgen.GeneratorFunc(func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	})
}

func newTestEnv(t *testing.T, now time.Time, opts ...service.ReservationOption) *testEnv {
	t.Helper()

	store := &failingStore{Store: memory.NewStore()}
	clock := &testClock{now: now}
	recorder := &eventRecorder{}
	roomRepo := repository.NewRoomRepository(store)
	resRepo := repository.NewReservationRepository(store)
	logger := zap.NewNop()

	defaults := []service.ReservationOption{
		service.WithClock(clock),
		service.WithIDGenerator(sequentialIDs("res")),
		service.WithPublisher(recorder),
	}

	return &testEnv{
		store:        store,
		clock:        clock,
		recorder:     recorder,
		roomRepo:     roomRepo,
		resRepo:      resRepo,
		rooms:        service.NewRoomService(roomRepo, sequentialIDs("room"), clock, logger),
		reservations: service.NewReservationService(roomRepo, resRepo, logger, append(defaults, opts...)...),
	}
}

func (e *testEnv) addRoom(t *testing.T, id string, available bool) *model.Room {
	t.Helper()
	room := &model.Room{ID: id, Name: "Room " + id, Capacity: 10, Available: available}
	require.NoError(t, e.roomRepo.Create(context.Background(), room))
	return room
}

func (e *testEnv) book(t *testing.T, roomID string, start, end time.Time) *model.Reservation {
	t.Helper()
	res, err := e.reservations.Create(context.Background(), service.CreateReservationInput{
		RoomID: roomID,
		UserID: "user-1",
		Start:  start,
		End:    end,
	})
	require.NoError(t, err)
	return res
}

func ts(day, hour, min int) time.Time {
	return time.Date(2024, time.January, day, hour, min, 0, 0, time.UTC)
}
