package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		kind service.ErrorKind
	}{
		{nil, service.KindNone},
		{service.ErrInvalidRange, service.KindInvalidRange},
		{fmt.Errorf("wrap: %w", service.ErrTooShort), service.KindTooShort},
		{service.ErrTooLong, service.KindTooLong},
		{service.ErrNotInFuture, service.KindNotInFuture},
		{&service.UnavailableError{}, service.KindRoomUnavailable},
		{fmt.Errorf("room x: %w", service.ErrNotFound), service.KindNotFound},
		{fmt.Errorf("op: %w: %w", service.ErrStorage, errors.New("io")), service.KindStorage},
		{service.ErrRoomDisabled, service.KindRoomDisabled},
		{service.ErrInvalidTransition, service.KindInvalidTransition},
		{service.ErrInvalidRoom, service.KindInvalidRoom},
		{errors.New("something else"), service.KindUnknown},
	}

	for _, c := range cases {
		assert.Equal(t, c.kind, service.KindOf(c.err), "%v", c.err)
	}
}

func TestConflictsOf(t *testing.T) {
	conflict := &model.Reservation{ID: "r1"}
	err := fmt.Errorf("create: %w", &service.UnavailableError{Conflicts: []*model.Reservation{conflict}})

	assert.ErrorIs(t, err, service.ErrRoomUnavailable)
	assert.Equal(t, []*model.Reservation{conflict}, service.ConflictsOf(err))
	assert.Nil(t, service.ConflictsOf(service.ErrNotFound))
}
