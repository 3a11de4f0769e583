package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Freeeeeet/room_booking_bot/internal/idgen"
	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/repository"
	"github.com/Freeeeeet/room_booking_bot/internal/repository/base"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"go.uber.org/zap"
)

// Ограничения для данных зала
const (
	RoomNameMinLength = 2
	RoomMinCapacity   = 1
	RoomMaxCapacity   = 1000
)

// RoomInput - данные для создания зала
type RoomInput struct {
	Name        string
	Description string
	Capacity    int
	Equipment   []string
	ImageURL    string
}

// RoomUpdate - частичное обновление зала; nil поля не меняются
type RoomUpdate struct {
	Name        *string
	Description *string
	Capacity    *int
	Equipment   []string
	ImageURL    *string
	Available   *bool
}

type RoomService struct {
	roomRepo *repository.RoomRepository
	ids      idgen.Generator
	clock    Clock
	logger   *zap.Logger
}

func NewRoomService(roomRepo *repository.RoomRepository, ids idgen.Generator, clock Clock, logger *zap.Logger) *RoomService {
	return &RoomService{
		roomRepo: roomRepo,
		ids:      ids,
		clock:    clock,
		logger:   logger,
	}
}

// List возвращает все залы
func (s *RoomService) List(ctx context.Context) ([]*model.Room, error) {
	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return nil, storageError("list rooms", err)
	}
	return rooms, nil
}

// ListAvailable возвращает залы, включённые администратором
func (s *RoomService) ListAvailable(ctx context.Context) ([]*model.Room, error) {
	return s.filter(ctx, func(room *model.Room) bool { return room.Available })
}

// Get получает зал по ID
func (s *RoomService) Get(ctx context.Context, roomID string) (*model.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		return nil, storageError("get room", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}
	return room, nil
}

// Create создаёт зал; новый зал всегда доступен
func (s *RoomService) Create(ctx context.Context, input RoomInput) (*model.Room, error) {
	if err := validateRoom(input.Name, input.Capacity); err != nil {
		return nil, err
	}

	room := &model.Room{
		ID:          s.ids.NewID(),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Capacity:    input.Capacity,
		Equipment:   cleanEquipment(input.Equipment),
		ImageURL:    input.ImageURL,
		Available:   true,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, storageError("create room", err)
	}

	s.logger.Info("Room created",
		zap.String("room_id", room.ID),
		zap.String("name", room.Name),
		zap.Int("capacity", room.Capacity),
	)

	return room, nil
}

// Update частично обновляет зал
func (s *RoomService) Update(ctx context.Context, roomID string, update RoomUpdate) (*model.Room, error) {
	room, err := s.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		room.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		room.Description = strings.TrimSpace(*update.Description)
	}
	if update.Capacity != nil {
		room.Capacity = *update.Capacity
	}
	if update.Equipment != nil {
		room.Equipment = cleanEquipment(update.Equipment)
	}
	if update.ImageURL != nil {
		room.ImageURL = *update.ImageURL
	}
	if update.Available != nil {
		room.Available = *update.Available
	}

	if err := validateRoom(room.Name, room.Capacity); err != nil {
		return nil, err
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		if base.IsNotFound(err) {
			return nil, fmt.Errorf("room %s: %w", roomID, ErrNotFound)
		}
		return nil, storageError("update room", err)
	}

	s.logger.Info("Room updated",
		zap.String("room_id", room.ID),
		zap.Bool("available", room.Available),
	)

	return room, nil
}

// SetAvailable включает или выключает зал
func (s *RoomService) SetAvailable(ctx context.Context, roomID string, available bool) (*model.Room, error) {
	return s.Update(ctx, roomID, RoomUpdate{Available: &available})
}

// Delete удаляет зал. Брони зала остаются и ссылаются на несуществующий зал.
func (s *RoomService) Delete(ctx context.Context, roomID string) error {
	if err := s.roomRepo.Delete(ctx, roomID); err != nil {
		if base.IsNotFound(err) {
			return fmt.Errorf("room %s: %w", roomID, ErrNotFound)
		}
		return storageError("delete room", err)
	}

	s.logger.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

// SearchByCapacity возвращает доступные залы вместимостью не меньше minCapacity
func (s *RoomService) SearchByCapacity(ctx context.Context, minCapacity int) ([]*model.Room, error) {
	return s.filter(ctx, func(room *model.Room) bool {
		return room.Available && room.Capacity >= minCapacity
	})
}

// SearchByEquipment возвращает доступные залы с указанным оборудованием
func (s *RoomService) SearchByEquipment(ctx context.Context, label string) ([]*model.Room, error) {
	return s.filter(ctx, func(room *model.Room) bool {
		return room.Available && room.HasEquipment(label)
	})
}

// SearchByName ищет доступные залы по названию (нечёткое совпадение без учёта регистра)
func (s *RoomService) SearchByName(ctx context.Context, query string) ([]*model.Room, error) {
	rooms, err := s.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return rooms, nil
	}

	names := make([]string, len(rooms))
	for i, room := range rooms {
		names[i] = room.Name
	}

	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)

	result := make([]*model.Room, 0, len(ranks))
	for _, rank := range ranks {
		result = append(result, rooms[rank.OriginalIndex])
	}
	return result, nil
}

// SeedDemo заполняет пустой каталог демонстрационными залами.
// Возвращает число добавленных залов.
func (s *RoomService) SeedDemo(ctx context.Context) (int, error) {
	existing, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		return 0, storageError("load rooms", err)
	}
	if len(existing) > 0 {
		s.logger.Debug("Demo rooms already exist", zap.Int("rooms", len(existing)))
		return 0, nil
	}

	now := s.clock.Now().UTC()
	rooms := demoRooms()
	for _, room := range rooms {
		room.CreatedAt = now
	}

	if err := s.roomRepo.CreateMany(ctx, rooms); err != nil {
		return 0, storageError("seed rooms", err)
	}

	s.logger.Info("Demo rooms created", zap.Int("rooms", len(rooms)))
	return len(rooms), nil
}

func (s *RoomService) filter(ctx context.Context, match func(*model.Room) bool) ([]*model.Room, error) {
	rooms, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*model.Room, 0, len(rooms))
	for _, room := range rooms {
		if match(room) {
			result = append(result, room)
		}
	}
	return result, nil
}

func validateRoom(name string, capacity int) error {
	if len([]rune(strings.TrimSpace(name))) < RoomNameMinLength {
		return fmt.Errorf("name must contain at least %d characters: %w", RoomNameMinLength, ErrInvalidRoom)
	}
	if capacity < RoomMinCapacity || capacity > RoomMaxCapacity {
		return fmt.Errorf("capacity must be between %d and %d: %w", RoomMinCapacity, RoomMaxCapacity, ErrInvalidRoom)
	}
	return nil
}

func cleanEquipment(equipment []string) []string {
	result := make([]string, 0, len(equipment))
	for _, e := range equipment {
		if e = strings.TrimSpace(e); e != "" {
			result = append(result, e)
		}
	}
	return result
}

func demoRooms() []*model.Room {
	return []*model.Room{
		{
			ID:          "room-1",
			Name:        "Зал Альфа",
			Description: "Большой учебный зал на 30 человек. Подходит для семинаров и тренингов",
			Capacity:    30,
			Equipment:   []string{"Проектор", "Маркерная доска", "WiFi", "Кондиционер", "Аудиосистема"},
			Available:   true,
		},
		{
			ID:          "room-2",
			Name:        "Зал Бета",
			Description: "Средний зал для встреч и воркшопов в небольших группах",
			Capacity:    15,
			Equipment:   []string{"Телевизор", "Маркерная доска", "WiFi", "Видеопроектор"},
			Available:   true,
		},
		{
			ID:          "room-3",
			Name:        "Зал Гамма",
			Description: "Небольшая переговорная для камерных встреч",
			Capacity:    8,
			Equipment:   []string{"Стол для переговоров", "WiFi", "Сенсорный экран", "Кондиционер"},
			Available:   true,
		},
		{
			ID:          "room-4",
			Name:        "Зал Дельта",
			Description: "Компьютерный класс для технических курсов",
			Capacity:    20,
			Equipment:   []string{"20 компьютеров", "Проектор", "Скоростной WiFi", "Профессиональное ПО"},
			Available:   true,
		},
		{
			ID:          "room-5",
			Name:        "Зал Омега",
			Description: "Аудитория для конференций и крупных мероприятий",
			Capacity:    100,
			Equipment:   []string{"Сцена", "Профессиональный звук", "Освещение", "HD проектор", "Микрофоны"},
			Available:   true,
		},
	}
}
