package catalog

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// VehicleRepository интерфейс репозитория каталога
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
}

// UserRepository интерфейс репозитория пользователей (проверка ролей)
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
