package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // часовые пояса без системной tzdata

	"github.com/joho/godotenv"
)

// Драйверы хранилища
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	Environment   string
	TelegramToken string

	StorageDriver string
	DBDSN         string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string

	AMQPURL      string
	AMQPExchange string

	AdminTelegramIDs []int64
	Timezone         string
	Location         *time.Location

	BookingMinMinutes int
	BookingMaxMinutes int
	SeedDemoData      bool
	ReminderLead      time.Duration
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	return FromEnv()
}

// FromEnv читает конфигурацию из переменных окружения
func FromEnv() (*Config, error) {
	cfg := &Config{
		Environment:   getString("ENV", "development"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		StorageDriver: strings.ToLower(getString("STORAGE_DRIVER", StorageMemory)),
		DBDSN:         os.Getenv("DB_DSN"),
		RedisAddr:     getString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisPrefix:   getString("REDIS_PREFIX", "room_booking"),
		AMQPURL:       os.Getenv("AMQP_URL"),
		AMQPExchange:  getString("AMQP_EXCHANGE", "room_booking.events"),
		Timezone:      getString("TIMEZONE", "UTC"),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.BookingMinMinutes, err = getInt("BOOKING_MIN_MINUTES", 15); err != nil {
		return nil, err
	}
	if cfg.BookingMaxMinutes, err = getInt("BOOKING_MAX_MINUTES", 480); err != nil {
		return nil, err
	}
	if cfg.SeedDemoData, err = getBool("SEED_DEMO_DATA", true); err != nil {
		return nil, err
	}
	if cfg.ReminderLead, err = getDuration("REMINDER_LEAD", 15*time.Minute); err != nil {
		return nil, err
	}
	if cfg.AdminTelegramIDs, err = parseIDs(os.Getenv("ADMIN_TELEGRAM_IDS")); err != nil {
		return nil, err
	}

	cfg.Location, err = time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageRedis:
	case StoragePostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("DB_DSN is required for postgres storage")
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER: unknown driver %q", c.StorageDriver)
	}

	if c.BookingMinMinutes <= 0 {
		return fmt.Errorf("BOOKING_MIN_MINUTES must be positive")
	}
	if c.BookingMaxMinutes < c.BookingMinMinutes {
		return fmt.Errorf("BOOKING_MAX_MINUTES must not be less than BOOKING_MIN_MINUTES")
	}
	return nil
}

func (c *Config) GetDBDSN() string {
	return c.DBDSN
}

// IsProduction сообщает, запущено ли приложение в production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func parseIDs(raw string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_TELEGRAM_IDS: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
