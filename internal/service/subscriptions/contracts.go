package subscriptions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetPlanByID(ctx context.Context, id int64) (*domain.SubscriptionPlan, error)
	ListPlans(ctx context.Context) ([]*domain.SubscriptionPlan, error)
	Create(ctx context.Context, sub *domain.Subscription) (*domain.Subscription, error)
	GetActiveByUser(ctx context.Context, userID int64) (*domain.Subscription, error)
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
