package app

import (
	"github.com/Freeeeeet/room_booking_bot/internal/config"
	"github.com/Freeeeeet/room_booking_bot/internal/events"
	"go.uber.org/zap"
)

// OpenPublisher подключается к RabbitMQ, если задан AMQP_URL.
// Без AMQP_URL события не публикуются.
func OpenPublisher(cfg *config.Config, logger *zap.Logger) (events.Publisher, func(), error) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL is empty, reservation events are disabled")
		return events.NopPublisher{}, func() {}, nil
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, err
	}

	logger.Info("Publishing reservation events", zap.String("exchange", cfg.AMQPExchange))
	closeFn := func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close AMQP publisher", zap.Error(err))
		}
	}
	return publisher, closeFn, nil
}
