package promotions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// PromotionRepository интерфейс репозитория промокодов
type PromotionRepository interface {
	Create(ctx context.Context, p *domain.Promotion) (*domain.Promotion, error)
	GetByCode(ctx context.Context, code string) (*domain.Promotion, error)
}

// VehicleRepository интерфейс репозитория каталога
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetActiveByUser(ctx context.Context, userID int64) (*domain.Subscription, error)
}

// UserRepository интерфейс репозитория пользователей (проверка ролей)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
