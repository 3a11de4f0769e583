package keyboard

import (
	"fmt"
	"strconv"
	"strings"
)

// Префиксы callback data
const (
	PrefixRoom          = "room:"           // room:<room_id>
	PrefixBook          = "book:"           // book:<room_id>
	PrefixDuration      = "dur:"            // dur:<minutes>
	PrefixCancelRes     = "cancel_res:"     // cancel_res:<reservation_id>
	PrefixConfirmCancel = "confirm_cancel:" // confirm_cancel:<reservation_id>
	PrefixToggleRoom    = "toggle_room:"    // toggle_room:<room_id>
	PrefixDeleteRoom    = "delete_room:"    // delete_room:<room_id>

	BackToRooms = "back_to_rooms"
	Noop        = "noop"
)

// ParseID извлекает строковый ID из callback data: "room:abc" -> "abc"
func ParseID(data, prefix string) (string, error) {
	if !strings.HasPrefix(data, prefix) {
		return "", fmt.Errorf("callback %q has no prefix %q", data, prefix)
	}
	id := strings.TrimPrefix(data, prefix)
	if id == "" {
		return "", fmt.Errorf("callback %q has empty id", data)
	}
	return id, nil
}

// ParseMinutes извлекает длительность из "dur:<minutes>"
func ParseMinutes(data string) (int, error) {
	raw, err := ParseID(data, PrefixDuration)
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	return minutes, nil
}
