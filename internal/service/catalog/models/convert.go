package models

import (
	"errors"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// ErrUnknownValue возвращается при неизвестном значении перечисления
var ErrUnknownValue = errors.New("catalog.models: unknown value")

// ToDomainVehicleType конвертирует строку в тип кузова
func ToDomainVehicleType(s string) (domain.VehicleType, error) {
	switch domain.VehicleType(s) {
	case domain.VehicleTypeSedan, domain.VehicleTypeSUV, domain.VehicleTypeVan, domain.VehicleTypeSports:
		return domain.VehicleType(s), nil
	default:
		return "", ErrUnknownValue
	}
}

// ToDomainFuelType конвертирует строку в тип топлива
func ToDomainFuelType(s string) (domain.FuelType, error) {
	switch domain.FuelType(s) {
	case domain.FuelTypePetrol, domain.FuelTypeDiesel, domain.FuelTypeHybrid, domain.FuelTypeElectric:
		return domain.FuelType(s), nil
	default:
		return "", ErrUnknownValue
	}
}

// ToDomainTransmission конвертирует строку в тип коробки передач
func ToDomainTransmission(s string) (domain.Transmission, error) {
	switch domain.Transmission(s) {
	case domain.TransmissionManual, domain.TransmissionAutomatic:
		return domain.Transmission(s), nil
	default:
		return "", ErrUnknownValue
	}
}

// ToDomainCatalogSort конвертирует строку в сортировку каталога
func ToDomainCatalogSort(s string) (domain.CatalogSort, error) {
	switch domain.CatalogSort(s) {
	case domain.SortByDailyRateAsc, domain.SortByDailyRateDesc, domain.SortByYearAsc, domain.SortByYearDesc:
		return domain.CatalogSort(s), nil
	default:
		return "", ErrUnknownValue
	}
}
