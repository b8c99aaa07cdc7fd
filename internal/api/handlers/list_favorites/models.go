package list_favorites

import (
	"github.com/m04kA/SMC-RentalService/internal/service/favorites/models"
)

// FavoriteVehicleResponse HTTP-модель автомобиля из избранного
type FavoriteVehicleResponse struct {
	ID        int64   `json:"id"`
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Year      int     `json:"year"`
	Type      string  `json:"type"`
	Fuel      string  `json:"fuel"`
	DailyRate float64 `json:"dailyRate"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	IsActive  bool    `json:"isActive"`
}

// FavoritesResponse HTTP-модель списка избранного
type FavoritesResponse struct {
	Vehicles []FavoriteVehicleResponse `json:"vehicles"`
	Total    int                       `json:"total"`
}

// FromServiceResponse конвертирует service модель в HTTP response
func FromServiceResponse(resp *models.FavoritesResponse) FavoritesResponse {
	vehicles := make([]FavoriteVehicleResponse, 0, len(resp.Vehicles))
	for _, v := range resp.Vehicles {
		vehicles = append(vehicles, FavoriteVehicleResponse{
			ID:        v.ID,
			Brand:     v.Brand,
			Model:     v.Model,
			Year:      v.Year,
			Type:      v.Type,
			Fuel:      v.Fuel,
			DailyRate: v.DailyRate,
			ImageURL:  v.ImageURL,
			IsActive:  v.IsActive,
		})
	}

	return FavoritesResponse{
		Vehicles: vehicles,
		Total:    resp.Total,
	}
}
