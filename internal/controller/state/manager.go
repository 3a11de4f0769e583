package state

import (
	"sync"
)

// Manager хранит состояния диалогов в памяти процесса
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*UserData // telegramID -> UserData
}

func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*UserData),
	}
}

// GetState получает текущее состояние пользователя
func (sm *Manager) GetState(telegramID int64) UserState {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.State
	}
	return StateNone
}

// SetState устанавливает состояние пользователя. StateNone удаляет запись вместе с черновиком.
func (sm *Manager) SetState(telegramID int64, state UserState) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if state == StateNone {
		delete(sm.states, telegramID)
		return
	}

	if userData, exists := sm.states[telegramID]; exists {
		userData.State = state
		return
	}
	sm.states[telegramID] = &UserData{State: state}
}

// StartBooking начинает новый диалог бронирования зала
func (sm *Manager) StartBooking(telegramID int64, roomID, roomName string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[telegramID] = &UserData{
		State: StateBookingStart,
		Draft: BookingDraft{RoomID: roomID, RoomName: roomName},
	}
}

// Draft возвращает копию черновика; false если диалога нет
func (sm *Manager) Draft(telegramID int64) (BookingDraft, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if userData, exists := sm.states[telegramID]; exists {
		return userData.Draft, true
	}
	return BookingDraft{}, false
}

// UpdateDraft меняет черновик и переводит диалог в next.
// Возвращает false если диалога нет.
func (sm *Manager) UpdateDraft(telegramID int64, next UserState, update func(*BookingDraft)) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	userData, exists := sm.states[telegramID]
	if !exists {
		return false
	}
	update(&userData.Draft)
	userData.State = next
	return true
}

// ClearState очищает состояние и черновик пользователя
func (sm *Manager) ClearState(telegramID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.states, telegramID)
}
