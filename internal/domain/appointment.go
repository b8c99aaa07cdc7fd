package domain

import "time"

// AppointmentStatus represents the status of a rental appointment
type AppointmentStatus string

const (
	StatusPending            AppointmentStatus = "pending"
	StatusConfirmed          AppointmentStatus = "confirmed"
	StatusInProgress         AppointmentStatus = "in_progress"
	StatusCompleted          AppointmentStatus = "completed"
	StatusCancelledByUser    AppointmentStatus = "cancelled_by_user"
	StatusCancelledByCompany AppointmentStatus = "cancelled_by_company"
	StatusNoShow             AppointmentStatus = "no_show"
)

// Appointment represents a rental booking of one vehicle for a time range
// Временной интервал полуоткрытый: [StartAt, EndAt)
type Appointment struct {
	ID        int64
	UserID    int64
	VehicleID int64
	StartAt   time.Time
	EndAt     time.Time
	Status    AppointmentStatus

	// Denormalized vehicle data for history
	VehicleBrand        string
	VehicleModel        string
	VehicleLicensePlate string
	DailyRate           float64

	// Price breakdown computed at booking time
	Days                 int
	BasePrice            float64
	SubscriptionDiscount float64
	PromotionDiscount    float64
	TotalPrice           float64
	PromoCode            *string

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment is in an active state
// Неактивные бронирования не участвуют в проверке пересечений
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByUser &&
		a.Status != StatusCancelledByCompany &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByUser || a.Status == StatusCancelledByCompany
}

// IsFinished returns true if the appointment is completed or was a no-show
func (a *Appointment) IsFinished() bool {
	return a.Status == StatusCompleted || a.Status == StatusNoShow
}

// Overlaps проверяет пересечение с интервалом [startAt, endAt)
// Используются строгие неравенства: граничащие интервалы не пересекаются
// (существующее завершается ровно в момент начала нового - конфликта нет)
func (a *Appointment) Overlaps(startAt, endAt time.Time) bool {
	return a.StartAt.Before(endAt) && a.EndAt.After(startAt)
}

// UserAppointmentsFilter фильтр истории бронирований пользователя
type UserAppointmentsFilter struct {
	UserID int64              // Обязательный параметр
	Status *AppointmentStatus // Фильтр по статусу (опционально)
}

// VehicleAppointmentsWindow окно запроса бронирований автомобиля
// Используется для проверки пересечений и вычисления свободных интервалов
type VehicleAppointmentsWindow struct {
	VehicleID int64     // Обязательный параметр
	From      time.Time // Начало окна
	To        time.Time // Конец окна
}
