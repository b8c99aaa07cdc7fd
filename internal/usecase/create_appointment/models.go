package create_appointment

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64     // ID пользователя
	VehicleID int64     // ID автомобиля
	StartAt   time.Time // Начало аренды
	EndAt     time.Time // Конец аренды (не включается)
	PromoCode *string   // Промокод (опционально)
	Notes     *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	UserID    int64     // ID пользователя
	VehicleID int64     // ID автомобиля
	StartAt   time.Time // Начало аренды
	EndAt     time.Time // Конец аренды
	Status    string    // Статус бронирования

	// Денормализованные данные автомобиля
	VehicleBrand        string  // Марка
	VehicleModel        string  // Модель
	VehicleLicensePlate string  // Госномер
	DailyRate           float64 // Цена за день на момент бронирования

	// Расчёт стоимости
	Days                 int     // Оплачиваемых дней
	BasePrice            float64 // Базовая цена
	SubscriptionDiscount float64 // Скидка подписки
	PromotionDiscount    float64 // Скидка промокода
	TotalPrice           float64 // Итого к оплате
	PromoCode            *string // Применённый промокод

	Notes *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
