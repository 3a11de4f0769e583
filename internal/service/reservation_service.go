package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/events"
	"github.com/Freeeeeet/room_booking_bot/internal/idgen"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"github.com/Freeeeeet/room_booking_bot/internal/repository/base"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
	"go.uber.org/zap"
)

// CreateReservationInput - данные для новой брони
type CreateReservationInput struct {
	RoomID  string
	UserID  string
	Start   time.Time
	End     time.Time
	Purpose string
}

type ReservationService struct {
	roomRepo        *repository.RoomRepository
	reservationRepo *repository.ReservationRepository
	checker         *AvailabilityChecker
	publisher       events.Publisher
	ids             idgen.Generator
	clock           Clock
	limits          timerange.Limits
	logger          *zap.Logger

	// mu сериализует "проверка + запись" внутри процесса
	mu sync.Mutex
}

// ReservationOption настраивает ReservationService
type ReservationOption func(*ReservationService)

func WithClock(clock Clock) ReservationOption {
	return func(s *ReservationService) { s.clock = clock }
}

func WithIDGenerator(ids idgen.Generator) ReservationOption {
	return func(s *ReservationService) { s.ids = ids }
}

func WithLimits(limits timerange.Limits) ReservationOption {
	return func(s *ReservationService) { s.limits = limits }
}

func WithPublisher(publisher events.Publisher) ReservationOption {
	return func(s *ReservationService) { s.publisher = publisher }
}

func NewReservationService(
	roomRepo *repository.RoomRepository,
	reservationRepo *repository.ReservationRepository,
	logger *zap.Logger,
	opts ...ReservationOption,
) *ReservationService {
	s := &ReservationService{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		checker:         NewAvailabilityChecker(reservationRepo),
		publisher:       events.NopPublisher{},
		ids:             idgen.New(),
		clock:           RealClock{},
		limits:          timerange.DefaultLimits,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limits возвращает действующие ограничения длительности
func (s *ReservationService) Limits() timerange.Limits {
	return s.limits
}

// CheckAvailability проверяет свободен ли зал на указанный период
func (s *ReservationService) CheckAvailability(ctx context.Context, roomID string, start, end time.Time, excludeID string) (*Availability, error) {
	return s.checker.Check(ctx, roomID, start, end, excludeID)
}

// Create создаёт бронь. При конфликте возвращает *UnavailableError (ErrRoomUnavailable),
// другое время не подбирает.
func (s *ReservationService) Create(ctx context.Context, input CreateReservationInput) (*model.Reservation, error) {
	start, end := input.Start.UTC(), input.End.UTC()

	// Проверяем интервал до любых обращений к хранилищу
	if err := timerange.Validate(start, end, s.limits, s.clock.Now()); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	room, err := s.roomRepo.GetByID(ctx, input.RoomID)
	if err != nil {
		return nil, storageError("get room", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", input.RoomID, ErrNotFound)
	}
	if !room.Available {
		return nil, fmt.Errorf("room %s: %w", input.RoomID, ErrRoomDisabled)
	}

	availability, err := s.checker.Check(ctx, input.RoomID, start, end, "")
	if err != nil {
		return nil, err
	}
	if !availability.Available {
		s.logger.Info("Reservation rejected: room unavailable",
			zap.String("room_id", input.RoomID),
			zap.String("user_id", input.UserID),
			zap.Int("conflicts", len(availability.Conflicts)),
		)
		return nil, &UnavailableError{Conflicts: availability.Conflicts}
	}

	now := s.clock.Now().UTC()
	reservation := &model.Reservation{
		ID:        s.ids.NewID(),
		RoomID:    input.RoomID,
		UserID:    input.UserID,
		StartTime: start,
		EndTime:   end,
		Purpose:   strings.TrimSpace(input.Purpose),
		Status:    model.ReservationStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, storageError("create reservation", err)
	}

	s.logger.Info("Reservation created",
		zap.String("reservation_id", reservation.ID),
		zap.String("room_id", reservation.RoomID),
		zap.String("user_id", reservation.UserID),
		zap.Time("start_time", reservation.StartTime),
		zap.Time("end_time", reservation.EndTime),
	)
	s.publish(ctx, events.TypeReservationCreated, reservation)

	reservation.Room = room
	return reservation, nil
}

// Cancel отменяет бронь. Повторная отмена допустима и только обновляет updated_at.
func (s *ReservationService) Cancel(ctx context.Context, reservationID string) (*model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	updated, err := s.reservationRepo.UpdateStatus(ctx, reservationID, model.ReservationStatusCancelled, func(res *model.Reservation) error {
		if !res.Status.CanTransitionTo(model.ReservationStatusCancelled) {
			return fmt.Errorf("%s -> %s: %w", res.Status, model.ReservationStatusCancelled, ErrInvalidTransition)
		}
		res.UpdatedAt = now
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidTransition) {
			return nil, err
		}
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
		}
		return nil, storageError("cancel reservation", err)
	}

	s.logger.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("room_id", updated.RoomID),
	)
	s.publish(ctx, events.TypeReservationCancelled, updated)

	return updated, nil
}

// Delete физически удаляет бронь
func (s *ReservationService) Delete(ctx context.Context, reservationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return storageError("get reservation", err)
	}
	if existing == nil {
		return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	if err := s.reservationRepo.Delete(ctx, reservationID); err != nil {
		if base.IsNotFound(err) {
			return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
		}
		return storageError("delete reservation", err)
	}

	s.logger.Info("Reservation deleted", zap.String("reservation_id", reservationID))
	s.publish(ctx, events.TypeReservationDeleted, existing)

	return nil
}

// Get получает бронь по ID вместе с залом
func (s *ReservationService) Get(ctx context.Context, reservationID string) (*model.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, storageError("get reservation", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	if err := s.attachRooms(ctx, []*model.Reservation{reservation}); err != nil {
		return nil, err
	}
	return reservation, nil
}

// ListByUser возвращает брони пользователя, новые сверху
func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]*model.Reservation, error) {
	reservations, err := s.reservationRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, storageError("list user reservations", err)
	}

	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].StartTime.After(reservations[j].StartTime)
	})

	if err := s.attachRooms(ctx, reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

// ListByRoom возвращает активные брони зала по возрастанию начала
func (s *ReservationService) ListByRoom(ctx context.Context, roomID string) ([]*model.Reservation, error) {
	reservations, err := s.reservationRepo.GetActiveByRoomID(ctx, roomID)
	if err != nil {
		return nil, storageError("list room reservations", err)
	}

	sortByStart(reservations)
	return reservations, nil
}

// ListActive возвращает активные брони, которые ещё не закончились к asOf
func (s *ReservationService) ListActive(ctx context.Context, asOf time.Time) ([]*model.Reservation, error) {
	active, err := s.reservationRepo.GetActive(ctx)
	if err != nil {
		return nil, storageError("list active reservations", err)
	}

	result := make([]*model.Reservation, 0, len(active))
	for _, res := range active {
		if !res.EndTime.Before(asOf) {
			result = append(result, res)
		}
	}

	sortByStart(result)
	if err := s.attachRooms(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListActiveNow - ListActive относительно текущего времени
func (s *ReservationService) ListActiveNow(ctx context.Context) ([]*model.Reservation, error) {
	return s.ListActive(ctx, s.clock.Now())
}

// ListOnDate возвращает активные брони, начинающиеся в календарный день day
// (день определяется в часовом поясе day)
func (s *ReservationService) ListOnDate(ctx context.Context, day time.Time) ([]*model.Reservation, error) {
	active, err := s.reservationRepo.GetActive(ctx)
	if err != nil {
		return nil, storageError("list reservations on date", err)
	}

	result := make([]*model.Reservation, 0)
	for _, res := range active {
		if timerange.WithinDay(res.StartTime, day) {
			result = append(result, res)
		}
	}

	sortByStart(result)
	if err := s.attachRooms(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// attachRooms подставляет залы; для удалённых залов Room остаётся nil
func (s *ReservationService) attachRooms(ctx context.Context, reservations []*model.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return storageError("load rooms", err)
	}

	byID := make(map[string]*model.Room, len(rooms))
	for _, room := range rooms {
		byID[room.ID] = room
	}
	for _, res := range reservations {
		res.Room = byID[res.RoomID]
	}
	return nil
}

func (s *ReservationService) publish(ctx context.Context, t events.Type, res *model.Reservation) {
	event := events.NewReservationEvent(t, res, s.clock.Now().UTC())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish reservation event",
			zap.String("type", string(t)),
			zap.String("reservation_id", res.ID),
			zap.Error(err),
		)
	}
}

func sortByStart(reservations []*model.Reservation) {
	sort.SliceStable(reservations, func(i, j int) bool {
		return reservations[i].StartTime.Before(reservations[j].StartTime)
	})
}
