package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeChannel struct {
	exchange string
	key      string
	msg      amqp.Publishing
	err      error
	closed   bool
}

func (c *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	c.exchange, c.key, c.msg = exchange, key, msg
	return c.err
}

func (c *fakeChannel) Close() error {
	c.closed = true
	return nil
}

func testReservation() *model.Reservation {
	start := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)
	return &model.Reservation{
		ID:        "r1",
		RoomID:    "room-1",
		UserID:    "u1",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    model.ReservationStatusConfirmed,
	}
}

func TestAMQPPublisherPublish(t *testing.T) {
	ch := &fakeChannel{}
	p := &AMQPPublisher{ch: ch, exchange: "room_booking.events"}

	occurred := time.Date(2024, time.January, 9, 12, 0, 0, 0, time.UTC)
	event := NewReservationEvent(TypeReservationCreated, testReservation(), occurred)

	require.NoError(t, p.Publish(context.Background(), event))
	assert.Equal(t, "room_booking.events", ch.exchange)
	assert.Equal(t, "reservation.created", ch.key)
	assert.Equal(t, "application/json", ch.msg.ContentType)
	assert.Equal(t, amqp.Persistent, ch.msg.DeliveryMode)
	assert.Equal(t, "r1", ch.msg.MessageId)

	var decoded ReservationEvent
	require.NoError(t, json.Unmarshal(ch.msg.Body, &decoded))
	assert.Equal(t, event, decoded)

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestAMQPPublisherError(t *testing.T) {
	ch := &fakeChannel{err: errors.New("channel closed")}
	p := &AMQPPublisher{ch: ch, exchange: "x"}

	err := p.Publish(context.Background(), NewReservationEvent(TypeReservationCancelled, testReservation(), time.Now()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reservation.cancelled")
}

func TestNopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.Publish(context.Background(), ReservationEvent{}))
}
