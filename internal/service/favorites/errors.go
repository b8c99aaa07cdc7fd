package favorites

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("favorites: vehicle not found")

	// ErrFavoriteNotFound возвращается, когда автомобиля нет в избранном
	ErrFavoriteNotFound = errors.New("favorites: vehicle is not in favorites")

	// ErrDuplicateFavorite возвращается при повторном добавлении в избранное
	ErrDuplicateFavorite = errors.New("favorites: vehicle is already in favorites")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("favorites: internal error")
)
