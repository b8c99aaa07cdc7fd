package list_plans

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/subscriptions/models"
)

type SubscriptionService interface {
	ListPlans(ctx context.Context) ([]models.PlanResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
