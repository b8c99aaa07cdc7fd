package subscriptions

import "errors"

var (
	// ErrPlanNotFound возвращается, когда тариф подписки не найден
	ErrPlanNotFound = errors.New("subscriptions: plan not found")

	// ErrSubscriptionNotFound возвращается, когда у пользователя нет активной подписки
	ErrSubscriptionNotFound = errors.New("subscriptions: active subscription not found")

	// ErrAlreadySubscribed возвращается, когда у пользователя уже есть активная подписка
	ErrAlreadySubscribed = errors.New("subscriptions: user already has an active subscription")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("subscriptions: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("subscriptions: internal error")
)
