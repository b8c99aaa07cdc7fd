package list_favorites

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/service/favorites/models"
)

type FavoriteService interface {
	List(ctx context.Context, userID int64) (*models.FavoritesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
