package reviews

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("reviews: vehicle not found")

	// ErrNotAllowed возвращается, когда у пользователя нет завершённой аренды автомобиля
	ErrNotAllowed = errors.New("reviews: user has no completed rental of this vehicle")

	// ErrDuplicateReview возвращается при повторном отзыве на автомобиль
	ErrDuplicateReview = errors.New("reviews: user already reviewed this vehicle")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reviews: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews: internal error")
)
