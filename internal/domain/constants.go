package domain

import "time"

// Business validation constants
const (
	// MinRentalNotice минимальное время от "сейчас" до начала аренды
	MinRentalNotice = time.Hour

	// MaxAdvanceBookingDays максимальный горизонт бронирования
	MaxAdvanceBookingDays = 90

	// MinFreeSlotDuration интервалы короче часа не считаются свободными слотами
	MinFreeSlotDuration = time.Hour

	// HoursPerRentalDay календарный день аренды
	HoursPerRentalDay = 24

	MinRating = 1
	MaxRating = 5

	MaxCommentLength            = 1000
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	DateTimeFormat = time.RFC3339
	DateFormat     = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не учитываются при проверке пересечений
// и вычислении свободных интервалов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelledByUser,
	StatusCancelledByCompany,
	StatusNoShow,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
}
