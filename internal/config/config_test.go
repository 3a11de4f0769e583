package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV", "TELEGRAM_TOKEN", "STORAGE_DRIVER", "DB_DSN", "REDIS_ADDR", "REDIS_PASSWORD",
	"REDIS_DB", "REDIS_PREFIX", "AMQP_URL", "AMQP_EXCHANGE", "ADMIN_TELEGRAM_IDS",
	"TIMEZONE", "BOOKING_MIN_MINUTES", "BOOKING_MAX_MINUTES", "SEED_DEMO_DATA", "REMINDER_LEAD",
}

func clearEnv(t *testing.T) {
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StorageMemory, cfg.StorageDriver)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "room_booking", cfg.RedisPrefix)
	assert.Equal(t, "room_booking.events", cfg.AMQPExchange)
	assert.Equal(t, 15, cfg.BookingMinMinutes)
	assert.Equal(t, 480, cfg.BookingMaxMinutes)
	assert.True(t, cfg.SeedDemoData)
	assert.Equal(t, 15*time.Minute, cfg.ReminderLead)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Empty(t, cfg.AdminTelegramIDs)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "postgres://localhost/rooms")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ADMIN_TELEGRAM_IDS", "100, 200,,300")
	t.Setenv("TIMEZONE", "Europe/Moscow")
	t.Setenv("BOOKING_MIN_MINUTES", "30")
	t.Setenv("BOOKING_MAX_MINUTES", "240")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("REMINDER_LEAD", "1h")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, StoragePostgres, cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/rooms", cfg.GetDBDSN())
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, []int64{100, 200, 300}, cfg.AdminTelegramIDs)
	assert.Equal(t, "Europe/Moscow", cfg.Location.String())
	assert.Equal(t, 30, cfg.BookingMinMinutes)
	assert.Equal(t, 240, cfg.BookingMaxMinutes)
	assert.False(t, cfg.SeedDemoData)
	assert.Equal(t, time.Hour, cfg.ReminderLead)
}

func TestFromEnvErrors(t *testing.T) {
	cases := map[string]map[string]string{
		"postgres without dsn": {"STORAGE_DRIVER": "postgres"},
		"unknown driver":       {"STORAGE_DRIVER": "sqlite"},
		"bad redis db":         {"REDIS_DB": "x"},
		"bad admin id":         {"ADMIN_TELEGRAM_IDS": "12,abc"},
		"bad timezone":         {"TIMEZONE": "Mars/Olympus"},
		"bad seed flag":        {"SEED_DEMO_DATA": "maybe"},
		"max below min":        {"BOOKING_MIN_MINUTES": "60", "BOOKING_MAX_MINUTES": "30"},
		"zero min":             {"BOOKING_MIN_MINUTES": "0"},
		"bad reminder lead":    {"REMINDER_LEAD": "soon"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
