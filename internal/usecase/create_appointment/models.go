package create_appointment

import "time"

// Client данные клиента
type Client struct {
	ID    string
	Name  string
	Phone *string
	Email *string
	Notes *string
}

// Request модель запроса на создание записи
type Request struct {
	Client     Client
	ResourceID string    // Мастер / кабинет / оборудование
	Title      string    // Название услуги для календаря
	Start      time.Time // Начало записи
	End        time.Time // Окончание записи (не включительно)
	Status     *string   // CONFIRMED (по умолчанию) или PENDING
	Price      *float64
	Notes      *string
	Color      *string // Цвет в календаре
}
