package main

import (
	"context"
	"io"

	"github.com/Freeeeeet/room_booking_bot/internal/app"
	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/storage"
	"go.uber.org/zap"
)

// runtime лениво открывает хранилище при первой команде, которой оно нужно
type runtime struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer

	// store можно подменить до первого вызова services (в тестах)
	store   storage.Store
	svc     *app.Services
	closers []func()
}

func (rt *runtime) services(ctx context.Context) (*app.Services, error) {
	if rt.svc != nil {
		return rt.svc, nil
	}

	if rt.store == nil {
		if rt.cfg.StorageDriver == config.StorageMemory {
			rt.logger.Warn("roomctl is running with in-memory storage, changes will not be kept")
		}

		store, closeStore, err := app.OpenStore(ctx, rt.cfg, rt.logger)
		if err != nil {
			return nil, err
		}
		rt.store = store
		rt.closers = append(rt.closers, closeStore)
	}

	publisher, closePublisher, err := app.OpenPublisher(rt.cfg, rt.logger)
	if err != nil {
		return nil, err
	}
	rt.closers = append(rt.closers, closePublisher)

	rt.svc = app.NewServices(rt.store, rt.cfg, publisher, rt.logger)
	return rt.svc, nil
}

func (rt *runtime) close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		rt.closers[i]()
	}
	rt.closers = nil
}
