package notifications

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	GetByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
