package formatting

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/room_booking_bot/internal/model"
	"github.com/Freeeeeet/room_booking_bot/internal/timerange"
)

// FormatRoomShort - одна строка для списка залов
func FormatRoomShort(room *model.Room) string {
	return fmt.Sprintf("%s %s (%d %s)",
		RoomAvailabilityDisplay(room.Available).Emoji,
		room.Name,
		room.Capacity,
		PluralizePeople(room.Capacity),
	)
}

// FormatRoom форматирует карточку зала
func FormatRoom(room *model.Room) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🏛 %s\n\n", room.Name)
	if room.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", room.Description)
	}
	fmt.Fprintf(&sb, "👥 Вместимость: %d %s\n", room.Capacity, PluralizePeople(room.Capacity))
	if len(room.Equipment) > 0 {
		fmt.Fprintf(&sb, "🛠 Оборудование: %s\n", strings.Join(room.Equipment, ", "))
	}
	display := RoomAvailabilityDisplay(room.Available)
	fmt.Fprintf(&sb, "%s %s", display.Emoji, display.Text)

	return sb.String()
}

// FormatReservation форматирует бронь; время выводится в loc
func FormatReservation(res *model.Reservation, loc *time.Location) string {
	display := GetReservationStatusDisplay(res.Status)

	roomName := "зал удалён"
	if res.Room != nil {
		roomName = res.Room.Name
	}

	start, end := res.StartTime.In(loc), res.EndTime.In(loc)

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", display.Emoji, roomName)
	fmt.Fprintf(&sb, "🕐 %s (%s)\n", FormatTimeRange(start, end), FormatDuration(timerange.DurationMinutes(start, end)))
	if res.Purpose != "" {
		fmt.Fprintf(&sb, "📝 %s\n", res.Purpose)
	}
	fmt.Fprintf(&sb, "📊 %s", display.Text)

	return sb.String()
}

// FormatReservationList форматирует список броней с заголовком
func FormatReservationList(title string, reservations []*model.Reservation, loc *time.Location) string {
	if len(reservations) == 0 {
		return title + "\n\nБроней нет."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n%d %s\n", title, len(reservations), PluralizeReservations(len(reservations)))
	for _, res := range reservations {
		sb.WriteString("\n")
		sb.WriteString(FormatReservation(res, loc))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatConflicts перечисляет интервалы, с которыми пересекается запрос
func FormatConflicts(conflicts []*model.Reservation, loc *time.Location) string {
	lines := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		lines = append(lines, "• "+FormatTimeRange(c.StartTime.In(loc), c.EndTime.In(loc)))
	}
	return strings.Join(lines, "\n")
}
