// Package storage описывает хранилище документов "ключ - вся коллекция".
// Каждая запись перезаписывается целиком, частичных обновлений нет.
package storage

import "context"

// Логические ключи коллекций
const (
	KeyRooms        = "rooms"
	KeyReservations = "reservations"
	KeyUsers        = "users"
)

// Store - минимальный контракт хранилища
type Store interface {
	// Get возвращает документ по ключу или nil, nil если ключа нет
	Get(ctx context.Context, key string) ([]byte, error)
	// Put полностью перезаписывает документ
	Put(ctx context.Context, key string, value []byte) error
	// Delete удаляет документ; отсутствие ключа не ошибка
	Delete(ctx context.Context, key string) error
}
