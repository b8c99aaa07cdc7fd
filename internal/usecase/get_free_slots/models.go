package get_free_slots

import "time"

// Request модель запроса свободных интервалов автомобиля
type Request struct {
	VehicleID int64      // ID автомобиля
	From      *time.Time // Начало окна (по умолчанию - сейчас)
	To        *time.Time // Конец окна (по умолчанию - горизонт бронирования)
}

// Slot свободный интервал для аренды
type Slot struct {
	StartAt time.Time // Начало интервала
	EndAt   time.Time // Конец интервала
}

// Response модель ответа со свободными интервалами
type Response struct {
	VehicleID int64     // ID автомобиля
	From      time.Time // Фактическое начало окна
	To        time.Time // Фактический конец окна
	Slots     []Slot    // Свободные интервалы, упорядоченные по времени
}
