package keyboard

import (
	"testing"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := ParseID("room:1704880000000-abc123def", PrefixRoom)
	require.NoError(t, err)
	assert.Equal(t, "1704880000000-abc123def", id)

	_, err = ParseID("room:", PrefixRoom)
	assert.Error(t, err)

	_, err = ParseID("book:1", PrefixRoom)
	assert.Error(t, err)
}

func TestParseMinutes(t *testing.T) {
	minutes, err := ParseMinutes("dur:90")
	require.NoError(t, err)
	assert.Equal(t, 90, minutes)

	for _, bad := range []string{"dur:", "dur:abc", "dur:-5", "room:90"} {
		_, err := ParseMinutes(bad)
		assert.Error(t, err, bad)
	}
}

func TestDurationChoices(t *testing.T) {
	markup := DurationChoices(60, 240)

	var data []string
	for _, row := range markup.InlineKeyboard {
		assert.LessOrEqual(t, len(row), 3)
		for _, button := range row {
			data = append(data, button.CallbackData)
		}
	}
	assert.Equal(t, []string{"dur:60", "dur:90", "dur:120", "dur:180", "dur:240"}, data)
}

func TestRoomDetails(t *testing.T) {
	available := RoomDetails(&model.Room{ID: "r1", Available: true})
	require.Len(t, available.InlineKeyboard, 2)
	assert.Equal(t, "book:r1", available.InlineKeyboard[0][0].CallbackData)

	disabled := RoomDetails(&model.Room{ID: "r1"})
	require.Len(t, disabled.InlineKeyboard, 1)
	assert.Equal(t, BackToRooms, disabled.InlineKeyboard[0][0].CallbackData)
}

func TestCancelButtonsSkipCancelled(t *testing.T) {
	markup := CancelButtons([]*model.Reservation{
		{ID: "a", Status: model.ReservationStatusConfirmed},
		{ID: "b", Status: model.ReservationStatusCancelled},
	})
	require.Len(t, markup.InlineKeyboard, 1)
	assert.Equal(t, "cancel_res:a", markup.InlineKeyboard[0][0].CallbackData)
}
