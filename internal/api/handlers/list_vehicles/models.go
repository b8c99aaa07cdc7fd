package list_vehicles

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/service/catalog/models"
)

// VehicleResponse HTTP response model
type VehicleResponse struct {
	ID           int64   `json:"id"`
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
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    string  `json:"updatedAt"`
}

// VehicleListResponse HTTP response model
type VehicleListResponse struct {
	Vehicles []*VehicleResponse `json:"vehicles"`
	Total    int                `json:"total"`
}

// ParseQuery извлекает фильтры каталога из query параметров
func ParseQuery(r *http.Request) (*models.ListVehiclesRequest, error) {
	q := r.URL.Query()
	req := &models.ListVehiclesRequest{}

	if v := q.Get("type"); v != "" {
		req.Type = &v
	}
	if v := q.Get("fuel"); v != "" {
		req.Fuel = &v
	}
	if v := q.Get("transmission"); v != "" {
		req.Transmission = &v
	}
	if v := q.Get("minSeats"); v != "" {
		seats, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		req.MinSeats = &seats
	}
	if v := q.Get("minDailyRate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		req.MinDailyRate = &rate
	}
	if v := q.Get("maxDailyRate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, err
		}
		req.MaxDailyRate = &rate
	}
	if v := q.Get("sort"); v != "" {
		req.Sort = &v
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.VehicleListResponse) *VehicleListResponse {
	vehicles := make([]*VehicleResponse, 0, len(resp.Vehicles))
	for _, v := range resp.Vehicles {
		vehicles = append(vehicles, FromServiceVehicle(v))
	}
	return &VehicleListResponse{Vehicles: vehicles, Total: resp.Total}
}

// FromServiceVehicle конвертирует карточку автомобиля в HTTP response
func FromServiceVehicle(v *models.VehicleResponse) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Type:         v.Type,
		Fuel:         v.Fuel,
		Transmission: v.Transmission,
		Seats:        v.Seats,
		DailyRate:    v.DailyRate,
		LicensePlate: v.LicensePlate,
		ImageURL:     v.ImageURL,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    v.UpdatedAt.Format(time.RFC3339),
	}
}
