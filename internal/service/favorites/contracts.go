package favorites

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// FavoriteRepository интерфейс репозитория избранного
type FavoriteRepository interface {
	Add(ctx context.Context, userID, vehicleID int64) error
	Remove(ctx context.Context, userID, vehicleID int64) error
	ListVehicleIDs(ctx context.Context, userID int64) ([]int64, error)
}

// VehicleRepository интерфейс репозитория каталога
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
