package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"go.uber.org/zap"
)

// Notifier доставляет напоминание владельцу брони
type Notifier interface {
	NotifyUpcoming(ctx context.Context, reservation *model.Reservation) error
}

// Scheduler периодически рассылает напоминания о скором начале брони
type Scheduler struct {
	reservations *service.ReservationService
	notifier     Notifier
	clock        service.Clock
	lead         time.Duration
	interval     time.Duration
	logger       *zap.Logger

	mu       sync.Mutex
	notified map[string]time.Time // reservationID -> end_time
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewScheduler(
	reservations *service.ReservationService,
	notifier Notifier,
	clock service.Clock,
	lead time.Duration,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		reservations: reservations,
		notifier:     notifier,
		clock:        clock,
		lead:         lead,
		interval:     time.Minute,
		logger:       logger,
		notified:     make(map[string]time.Time),
		stopChan:     make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (s *Scheduler) Start(ctx context.Context) {
	if s.lead <= 0 {
		s.logger.Info("Reminders are disabled")
		return
	}

	s.logger.Info("Starting reminder scheduler", zap.Duration("lead", s.lead))
	go s.runReminderTask(ctx)
}

// Stop останавливает фоновую задачу
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping reminder scheduler")
		close(s.stopChan)
	})
}

func (s *Scheduler) runReminderTask(ctx context.Context) {
	s.sendReminders(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sendReminders(ctx)
		case <-s.stopChan:
			s.logger.Info("Reminder task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Reminder task cancelled")
			return
		}
	}
}

// sendReminders уведомляет о бронях, начинающихся в ближайшие lead.
// Каждая бронь напоминается один раз. Возвращает число отправленных напоминаний.
func (s *Scheduler) sendReminders(ctx context.Context) int {
	now := s.clock.Now()

	active, err := s.reservations.ListActive(ctx, now)
	if err != nil {
		s.logger.Error("Failed to load active reservations", zap.Error(err))
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.forgetFinished(now)

	sent := 0
	for _, res := range active {
		if !res.StartTime.After(now) || res.StartTime.After(now.Add(s.lead)) {
			continue
		}
		if _, done := s.notified[res.ID]; done {
			continue
		}

		if err := s.notifier.NotifyUpcoming(ctx, res); err != nil {
			s.logger.Warn("Failed to send reminder",
				zap.String("reservation_id", res.ID),
				zap.Error(err),
			)
			continue
		}

		s.notified[res.ID] = res.EndTime
		sent++
	}

	if sent > 0 {
		s.logger.Info("Reminders sent", zap.Int("count", sent))
	}
	return sent
}

func (s *Scheduler) forgetFinished(now time.Time) {
	for id, end := range s.notified {
		if end.Before(now) {
			delete(s.notified, id)
		}
	}
}
