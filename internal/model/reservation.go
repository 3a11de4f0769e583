package model

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"   // Ожидает подтверждения (не создаётся сервисом)
	ReservationStatusConfirmed ReservationStatus = "confirmed" // Подтверждена
	ReservationStatusCancelled ReservationStatus = "cancelled" // Отменена
)

// reservationTransitions - разрешённые переходы статусов.
// Новые переходы добавляются только здесь.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusCancelled},
	ReservationStatusCancelled: {ReservationStatusCancelled}, // повторная отмена только обновляет updated_at
}

// CanTransitionTo проверяет, допустим ли переход в статус next
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsActive - любая не отменённая бронь
func (s ReservationStatus) IsActive() bool {
	return s != ReservationStatusCancelled
}

// IsValid проверяет что статус входит в перечисление
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID        string            `json:"id"`
	RoomID    string            `json:"room_id"`
	UserID    string            `json:"user_id"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time"`
	Purpose   string            `json:"purpose,omitempty"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	// Дополнительное поле для отображения (не сохраняется).
	// nil если зал был удалён.
	Room *Room `json:"-"`
}

// IsActive возвращает true если бронь не отменена
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// Clone возвращает копию брони без связанного зала
func (r *Reservation) Clone() *Reservation {
	c := *r
	c.Room = nil
	return &c
}
