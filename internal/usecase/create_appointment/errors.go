package create_appointment

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_appointment: vehicle not found")

	// ErrVehicleInactive возвращается, когда автомобиль снят с проката
	ErrVehicleInactive = errors.New("create_appointment: vehicle is not available for rent")

	// ErrVehicleUnavailable возвращается, когда интервал пересекается с другим бронированием
	ErrVehicleUnavailable = errors.New("create_appointment: vehicle is already booked for this period")

	// ErrTooLateToBook возвращается, когда до начала аренды меньше минимального срока
	ErrTooLateToBook = errors.New("create_appointment: rental must start at least one hour from now")

	// ErrDateTooFarInFuture возвращается, когда начало аренды за горизонтом бронирования
	ErrDateTooFarInFuture = errors.New("create_appointment: rental start is too far in the future")

	// ErrPromotionNotFound возвращается, когда промокод не найден
	ErrPromotionNotFound = errors.New("create_appointment: promotion not found")

	// ErrPromotionInactive возвращается, когда промокод выключен
	ErrPromotionInactive = errors.New("create_appointment: promotion is inactive")

	// ErrPromotionExpired возвращается, когда момент бронирования вне окна действия промокода
	ErrPromotionExpired = errors.New("create_appointment: promotion is outside its validity window")

	// ErrPromotionUsageCapReached возвращается, когда лимит применений промокода исчерпан
	ErrPromotionUsageCapReached = errors.New("create_appointment: promotion usage cap reached")

	// ErrPromotionEVOnly возвращается, когда EV-промокод применяют не к электромобилю
	ErrPromotionEVOnly = errors.New("create_appointment: promotion is valid for electric vehicles only")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
