package appointments

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByUser(ctx context.Context, filter domain.UserAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, status domain.AppointmentStatus, reason string) error
}

// PaymentRepository интерфейс репозитория платежей
// Нужен для возврата средств при отмене оплаченного бронирования
type PaymentRepository interface {
	GetLatestByAppointment(ctx context.Context, appointmentID int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus) error
}

// UserRepository интерфейс репозитория пользователей (проверка ролей)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Notifier интерфейс для отправки внутренних уведомлений
type Notifier interface {
	Notify(ctx context.Context, userID int64, ntype domain.NotificationType, title, message string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
