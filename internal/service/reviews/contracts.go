package reviews

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByVehicle(ctx context.Context, vehicleID int64) ([]*domain.Review, error)
	AverageRatingByVehicle(ctx context.Context, vehicleID int64) (float64, error)
}

// VehicleRepository интерфейс репозитория каталога
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	HasCompletedByUserAndVehicle(ctx context.Context, userID, vehicleID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
