package state

import "time"

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Диалог бронирования
	StateBookingStart    UserState = "booking_start"
	StateBookingDuration UserState = "booking_duration"
	StateBookingPurpose  UserState = "booking_purpose"
)

// BookingDraft - данные брони, собранные в диалоге
type BookingDraft struct {
	RoomID          string
	RoomName        string
	Start           time.Time
	DurationMinutes int
}

// End возвращает окончание брони по началу и длительности
func (d BookingDraft) End() time.Time {
	return d.Start.Add(time.Duration(d.DurationMinutes) * time.Minute)
}

// UserData хранит состояние и черновик пользователя во время диалога
type UserData struct {
	State UserState
	Draft BookingDraft
}
