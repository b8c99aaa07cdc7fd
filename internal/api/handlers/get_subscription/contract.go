package get_subscription

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	GetActive(ctx context.Context, userID int64) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
