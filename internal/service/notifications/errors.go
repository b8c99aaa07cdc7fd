package notifications

import "errors"

var (
	// ErrNotificationNotFound возвращается, когда уведомление не найдено
	ErrNotificationNotFound = errors.New("notifications: notification not found")

	// ErrAccessDenied возвращается при обращении к чужому уведомлению
	ErrAccessDenied = errors.New("notifications: access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("notifications: internal error")
)
