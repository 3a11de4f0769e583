package model

import "time"

type Room struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Capacity    int       `json:"capacity"`
	Equipment   []string  `json:"equipment"`
	ImageURL    string    `json:"image_url,omitempty"`
	Available   bool      `json:"available"` // Административный переключатель, не связан с бронями
	CreatedAt   time.Time `json:"created_at"`
}

// HasEquipment проверяет наличие оборудования (точное совпадение)
func (r *Room) HasEquipment(label string) bool {
	for _, e := range r.Equipment {
		if e == label {
			return true
		}
	}
	return false
}

// Clone возвращает глубокую копию зала
func (r *Room) Clone() *Room {
	c := *r
	if r.Equipment != nil {
		c.Equipment = append([]string(nil), r.Equipment...)
	}
	return &c
}

// String нужен для нечёткого поиска по названию
func (r *Room) String() string {
	return r.Name
}
