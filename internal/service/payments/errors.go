package payments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда бронирование не найдено
	ErrAppointmentNotFound = errors.New("payments: appointment not found")

	// ErrAccessDenied возвращается, когда платит не владелец бронирования
	ErrAccessDenied = errors.New("payments: access denied")

	// ErrAppointmentNotPayable возвращается, когда бронирование нельзя оплатить
	ErrAppointmentNotPayable = errors.New("payments: appointment cannot be paid in its current status")

	// ErrAlreadyPaid возвращается при повторной оплате бронирования
	ErrAlreadyPaid = errors.New("payments: appointment is already paid")

	// ErrPaymentDeclined возвращается, когда платёжный шлюз отклонил платёж
	ErrPaymentDeclined = errors.New("payments: payment declined")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("payments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("payments: internal error")
)
