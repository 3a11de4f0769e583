package base

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Freeeeeet/room_booking_bot/internal/storage"
)

// ErrNotFound возвращается при изменении отсутствующей записи
var ErrNotFound = errors.New("record not found")

// Collection - коллекция записей, хранящаяся одним документом.
// Любое изменение: прочитать всё -> изменить в памяти -> записать всё.
type Collection[T any] struct {
	store storage.Store
	key   string
}

// NewCollection создаёт коллекцию поверх хранилища
func NewCollection[T any](store storage.Store, key string) *Collection[T] {
	return &Collection[T]{store: store, key: key}
}

// Key возвращает ключ документа
func (c *Collection[T]) Key() string {
	return c.key
}

// Load читает всю коллекцию; отсутствующий документ - пустая коллекция
func (c *Collection[T]) Load(ctx context.Context) ([]*T, error) {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.key, err)
	}
	if len(raw) == 0 {
		return []*T{}, nil
	}

	var items []*T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.key, err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

// Save перезаписывает коллекцию целиком
func (c *Collection[T]) Save(ctx context.Context, items []*T) error {
	if items == nil {
		items = []*T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.store.Put(ctx, c.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", c.key, err)
	}
	return nil
}

// Mutate выполняет read-modify-write. Если fn вернула ошибку, запись не выполняется.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []*T) ([]*T, error)) error {
	items, err := c.Load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return c.Save(ctx, updated)
}

// Find возвращает первую запись, удовлетворяющую условию, или nil
func (c *Collection[T]) Find(ctx context.Context, match func(*T) bool) (*T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if match(item) {
			return item, nil
		}
	}
	return nil, nil
}

// Filter возвращает все записи, удовлетворяющие условию
func (c *Collection[T]) Filter(ctx context.Context, match func(*T) bool) ([]*T, error) {
	items, err := c.Load(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*T, 0, len(items))
	for _, item := range items {
		if match(item) {
			result = append(result, item)
		}
	}
	return result, nil
}

// IsNotFound проверяет является ли ошибка "запись не найдена"
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
