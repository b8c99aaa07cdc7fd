package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByVehicleWindow(ctx context.Context, window domain.VehicleAppointmentsWindow) ([]*domain.Appointment, error)
}

// VehicleRepository интерфейс репозитория каталога
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
	IncrementUsage(ctx context.Context, id int64) error
}

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetActiveByUser(ctx context.Context, userID int64) (*domain.Subscription, error)
}

// Notifier интерфейс отправки уведомлений пользователям
type Notifier interface {
	Notify(ctx context.Context, userID int64, ntype domain.NotificationType, title, message string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
