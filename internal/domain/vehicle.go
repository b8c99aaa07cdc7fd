package domain

import "time"

// VehicleType represents the body type of a vehicle
type VehicleType string

const (
	VehicleTypeSedan  VehicleType = "sedan"
	VehicleTypeSUV    VehicleType = "suv"
	VehicleTypeVan    VehicleType = "van"
	VehicleTypeSports VehicleType = "sports"
)

// FuelType represents the fuel type of a vehicle
type FuelType string

const (
	FuelTypePetrol   FuelType = "petrol"
	FuelTypeDiesel   FuelType = "diesel"
	FuelTypeHybrid   FuelType = "hybrid"
	FuelTypeElectric FuelType = "electric"
)

// Transmission represents the transmission type of a vehicle
type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

// Vehicle represents a rental vehicle in the catalog
type Vehicle struct {
	ID           int64
	Brand        string
	Model        string
	Year         int
	Type         VehicleType
	Fuel         FuelType
	Transmission Transmission
	Seats        int
	DailyRate    float64
	LicensePlate string
	ImageURL     *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsElectric returns true if the vehicle is fully electric
// EV-restricted promotions only apply to such vehicles
func (v *Vehicle) IsElectric() bool {
	return v.Fuel == FuelTypeElectric
}

// CatalogSort поле и направление сортировки каталога
type CatalogSort string

const (
	SortByDailyRateAsc  CatalogSort = "daily_rate_asc"
	SortByDailyRateDesc CatalogSort = "daily_rate_desc"
	SortByYearAsc       CatalogSort = "year_asc"
	SortByYearDesc      CatalogSort = "year_desc"
)

// VehicleFilter фильтр каталога автомобилей
// Все поля опциональны: nil = без фильтрации по этому полю
type VehicleFilter struct {
	Type            *VehicleType  // Тип кузова
	Fuel            *FuelType     // Тип топлива
	Transmission    *Transmission // Коробка передач
	MinSeats        *int          // Минимальное количество мест
	MinDailyRate    *float64      // Нижняя граница цены за день
	MaxDailyRate    *float64      // Верхняя граница цены за день
	Sort            *CatalogSort  // Сортировка (по умолчанию - по цене ASC)
	IncludeInactive bool          // Включать ли снятые с проката автомобили
}
