package subscribe

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
