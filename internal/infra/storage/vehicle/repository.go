package vehicle

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var vehicleColumns = []string{
	"id",
	"brand",
	"model",
	"year",
	"type",
	"fuel",
	"transmission",
	"seats",
	"daily_rate",
	"license_plate",
	"image_url",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога автомобилей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет автомобиль в каталог
func (r *Repository) Create(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns(
			"brand",
			"model",
			"year",
			"type",
			"fuel",
			"transmission",
			"seats",
			"daily_rate",
			"license_plate",
			"image_url",
			"is_active",
		).
		Values(
			v.Brand,
			v.Model,
			v.Year,
			v.Type,
			v.Fuel,
			v.Transmission,
			v.Seats,
			v.DailyRate,
			v.LicensePlate,
			v.ImageURL,
			v.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID получает автомобиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(vehicleColumns...).
		From("vehicles").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	v, err := scanVehicleRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan vehicle: %w", ErrScanRow, err)
	}

	return v, nil
}

// List получает каталог автомобилей с фильтрацией и сортировкой
//
// Примеры использования:
//
//  1. Все активные автомобили:
//     filter := domain.VehicleFilter{}
//
//  2. Электромобили с автоматом до 100 за день:
//     filter := domain.VehicleFilter{
//     Fuel: ptr.Ptr(domain.FuelTypeElectric),
//     Transmission: ptr.Ptr(domain.TransmissionAutomatic),
//     MaxDailyRate: ptr.Ptr(100.0),
//     }
func (r *Repository) List(ctx context.Context, filter domain.VehicleFilter) ([]*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(vehicleColumns...).
		From("vehicles")

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if filter.Type != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"type": *filter.Type})
	}
	if filter.Fuel != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"fuel": *filter.Fuel})
	}
	if filter.Transmission != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"transmission": *filter.Transmission})
	}
	if filter.MinSeats != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"seats": *filter.MinSeats})
	}
	if filter.MinDailyRate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"daily_rate": *filter.MinDailyRate})
	}
	if filter.MaxDailyRate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"daily_rate": *filter.MaxDailyRate})
	}

	selectBuilder = selectBuilder.OrderBy(orderByClause(filter.Sort))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVehicles(rows)
}

// Update обновляет данные автомобиля
func (r *Repository) Update(ctx context.Context, v *domain.Vehicle) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("vehicles").
		Set("brand", v.Brand).
		Set("model", v.Model).
		Set("year", v.Year).
		Set("type", v.Type).
		Set("fuel", v.Fuel).
		Set("transmission", v.Transmission).
		Set("seats", v.Seats).
		Set("daily_rate", v.DailyRate).
		Set("license_plate", v.LicensePlate).
		Set("image_url", v.ImageURL).
		Set("is_active", v.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

// orderByClause маппит сортировку каталога на ORDER BY
// Дефолт - по цене за день по возрастанию
func orderByClause(sort *domain.CatalogSort) string {
	if sort == nil {
		return "daily_rate ASC"
	}
	switch *sort {
	case domain.SortByDailyRateDesc:
		return "daily_rate DESC"
	case domain.SortByYearAsc:
		return "year ASC"
	case domain.SortByYearDesc:
		return "year DESC"
	default:
		return "daily_rate ASC"
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVehicleRow(row rowScanner) (*domain.Vehicle, error) {
	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.Brand,
		&v.Model,
		&v.Year,
		&v.Type,
		&v.Fuel,
		&v.Transmission,
		&v.Seats,
		&v.DailyRate,
		&v.LicensePlate,
		&v.ImageURL,
		&v.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, err
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

func scanVehicles(rows *sql.Rows) ([]*domain.Vehicle, error) {
	vehicles := make([]*domain.Vehicle, 0)

	for rows.Next() {
		v, err := scanVehicleRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanVehicles - scan row: %w", ErrScanRow, err)
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanVehicles - rows error: %w", ErrScanRow, err)
	}

	return vehicles, nil
}
