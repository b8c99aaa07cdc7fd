package promotions

import "errors"

var (
	// ErrPromotionNotFound возвращается, когда промокод не найден
	ErrPromotionNotFound = errors.New("promotions: promotion not found")

	// ErrPromotionInactive возвращается, когда промокод выключен
	ErrPromotionInactive = errors.New("promotions: promotion is inactive")

	// ErrPromotionExpired возвращается, когда текущий момент вне окна действия промокода
	ErrPromotionExpired = errors.New("promotions: promotion is outside its validity window")

	// ErrPromotionUsageCapReached возвращается, когда лимит применений исчерпан
	ErrPromotionUsageCapReached = errors.New("promotions: promotion usage cap reached")

	// ErrPromotionEVOnly возвращается, когда EV-промокод применяют не к электромобилю
	ErrPromotionEVOnly = errors.New("promotions: promotion is valid for electric vehicles only")

	// ErrDuplicateCode возвращается при создании промокода с существующим кодом
	ErrDuplicateCode = errors.New("promotions: promotion code already exists")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("promotions: vehicle not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на операцию
	ErrAccessDenied = errors.New("promotions: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("promotions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("promotions: internal error")
)
