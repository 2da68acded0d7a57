package get_free_slots

import "time"

// Request модель запроса на получение свободных окон ресурса
type Request struct {
	ResourceID      string
	Date            time.Time // День в поясе салона
	DurationMinutes int       // Длительность будущей записи
}

// Response модель ответа со списком свободных окон
type Response struct {
	ResourceID      string
	Date            time.Time
	DurationMinutes int
	OpenHour        int
	CloseHour       int
	Slots           []Slot
}

// Slot свободное окно
type Slot struct {
	Start time.Time
	End   time.Time
}
