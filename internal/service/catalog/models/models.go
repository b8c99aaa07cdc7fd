package models

import (
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ListVehiclesRequest запрос каталога с фильтрацией и сортировкой
type ListVehiclesRequest struct {
	Type            *string
	Fuel            *string
	Transmission    *string
	MinSeats        *int
	MinDailyRate    *float64
	MaxDailyRate    *float64
	Sort            *string
	IncludeInactive bool // Учитывается только для персонала
}

// CreateVehicleRequest запрос на добавление автомобиля (только менеджер)
type CreateVehicleRequest struct {
	UserID       int64 // Инициатор операции
	Brand        string
	Model        string
	Year         int
	Type         string
	Fuel         string
	Transmission string
	Seats        int
	DailyRate    float64
	LicensePlate string
	ImageURL     *string
}

// UpdateVehicleRequest запрос на обновление автомобиля (только менеджер)
type UpdateVehicleRequest struct {
	UserID       int64 // Инициатор операции
	Brand        string
	Model        string
	Year         int
	Type         string
	Fuel         string
	Transmission string
	Seats        int
	DailyRate    float64
	LicensePlate string
	ImageURL     *string
	IsActive     bool
}

// VehicleResponse карточка автомобиля
type VehicleResponse struct {
	ID           int64
	Brand        string
	Model        string
	Year         int
	Type         string
	Fuel         string
	Transmission string
	Seats        int
	DailyRate    float64
	LicensePlate string
	ImageURL     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// VehicleListResponse каталог автомобилей
type VehicleListResponse struct {
	Vehicles []*VehicleResponse
	Total    int
}

// ToDomainFilter конвертирует запрос каталога в domain фильтр
func (r *ListVehiclesRequest) ToDomainFilter() (domain.VehicleFilter, error) {
	filter := domain.VehicleFilter{
		MinSeats:        r.MinSeats,
		MinDailyRate:    r.MinDailyRate,
		MaxDailyRate:    r.MaxDailyRate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Type != nil {
		t, err := ToDomainVehicleType(*r.Type)
		if err != nil {
			return filter, err
		}
		filter.Type = &t
	}
	if r.Fuel != nil {
		f, err := ToDomainFuelType(*r.Fuel)
		if err != nil {
			return filter, err
		}
		filter.Fuel = &f
	}
	if r.Transmission != nil {
		tr, err := ToDomainTransmission(*r.Transmission)
		if err != nil {
			return filter, err
		}
		filter.Transmission = &tr
	}
	if r.Sort != nil {
		s, err := ToDomainCatalogSort(*r.Sort)
		if err != nil {
			return filter, err
		}
		filter.Sort = &s
	}

	return filter, nil
}

// FromDomainVehicle конвертирует domain модель в response
func FromDomainVehicle(v *domain.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:           v.ID,
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         v.Year,
		Type:         string(v.Type),
		Fuel:         string(v.Fuel),
		Transmission: string(v.Transmission),
		Seats:        v.Seats,
		DailyRate:    v.DailyRate,
		LicensePlate: v.LicensePlate,
		ImageURL:     v.ImageURL,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// FromDomainVehicleList конвертирует список domain моделей в response
func FromDomainVehicleList(vehicles []*domain.Vehicle) *VehicleListResponse {
	result := make([]*VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		result = append(result, FromDomainVehicle(v))
	}
	return &VehicleListResponse{Vehicles: result, Total: len(result)}
}
