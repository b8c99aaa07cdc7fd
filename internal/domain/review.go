package domain

import "time"

// Review represents a user's review of a vehicle
// Один отзыв на автомобиль от одного пользователя,
// только после завершённой аренды этого автомобиля
type Review struct {
	ID        int64
	UserID    int64
	VehicleID int64
	Rating    int // 1..5
	Comment   *string
	CreatedAt time.Time
}

// Favorite represents a user's vehicle bookmark
type Favorite struct {
	UserID    int64
	VehicleID int64
	CreatedAt time.Time
}
