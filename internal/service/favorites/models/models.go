package models

import (
	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// FavoriteVehicleResponse автомобиль из избранного
type FavoriteVehicleResponse struct {
	ID        int64
	Brand     string
	Model     string
	Year      int
	Type      string
	Fuel      string
	DailyRate float64
	ImageURL  *string
	IsActive  bool
}

// FavoritesResponse список избранных автомобилей пользователя
type FavoritesResponse struct {
	Vehicles []FavoriteVehicleResponse
	Total    int
}

// FromDomainVehicle конвертирует domain модель автомобиля в response
func FromDomainVehicle(v *domain.Vehicle) FavoriteVehicleResponse {
	return FavoriteVehicleResponse{
		ID:        v.ID,
		Brand:     v.Brand,
		Model:     v.Model,
		Year:      v.Year,
		Type:      string(v.Type),
		Fuel:      string(v.Fuel),
		DailyRate: v.DailyRate,
		ImageURL:  v.ImageURL,
		IsActive:  v.IsActive,
	}
}
