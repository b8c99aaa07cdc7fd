package update_vehicle

import (
	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

// UpdateVehicleRequest HTTP request model
type UpdateVehicleRequest struct {
	Brand        string  `json:"brand"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Type         string  `json:"type"`
	Fuel         string  `json:"fuel"`
	Transmission string  `json:"transmission"`
	Seats        int     `json:"seats"`
	DailyRate    float64 `json:"dailyRate"`
	LicensePlate string  `json:"licensePlate"`
	ImageURL     *string `json:"imageUrl,omitempty"`
	IsActive     bool    `json:"isActive"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateVehicleRequest) ToServiceRequest(userID int64) *models.UpdateVehicleRequest {
	return &models.UpdateVehicleRequest{
		UserID:       userID,
		Brand:        r.Brand,
		Model:        r.Model,
		Year:         r.Year,
		Type:         r.Type,
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		Seats:        r.Seats,
		DailyRate:    r.DailyRate,
		LicensePlate: r.LicensePlate,
		ImageURL:     r.ImageURL,
		IsActive:     r.IsActive,
	}
}
