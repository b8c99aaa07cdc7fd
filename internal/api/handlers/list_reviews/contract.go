package list_reviews

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/reviews/models"
)

type ReviewService interface {
	ListByVehicle(ctx context.Context, vehicleID int64) (*models.VehicleReviewsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
