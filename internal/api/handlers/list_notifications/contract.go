package list_notifications

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/notifications/models"
)

type NotificationService interface {
	GetByUser(ctx context.Context, userID int64) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
